package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// Progress is served on /progress.
type Progress struct {
	Finished float32 `json:"finished"`
	Workers  int     `json:"workers"`
	Done     bool    `json:"done"`
}

// NewMux passes websocket connections on /ws to l and serves a JSON progress
// report of s on /progress.
func NewMux(l *WebsocketListener, s *Scheduler, lg *log.Logger) *http.ServeMux {
	if lg == nil {
		lg = log.Default()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l, lg))
	mux.HandleFunc("/progress", progressHandler(s, lg))
	return mux
}

// WebServer creates the websocket listener for port along with the
// http.Server that feeds it.
func WebServer(ctx context.Context, port int, s *Scheduler, lg *log.Logger) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, fmt.Sprintf(":%d/ws", port))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewMux(l, s, lg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return l, srv
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			lg.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "coordinator is shutting down")
		}
	}
}

func progressHandler(s *Scheduler, lg *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := Progress{Finished: s.Finished(), Workers: s.Workers()}
		select {
		case <-s.Done():
			p.Done = true
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(p); err != nil {
			lg.Printf("err: write progress: %v", err)
		}
	}
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

// Accept waits for the next websocket and returns it as a binary net.Conn.
// The connection lives until it is closed or the listener is closed.
func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
