package dispatch

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/marben/irpc"

	newton "github.com/marben/dist_newton"
)

// NewIrpcServer returns an irpc server that turns every connected worker
// into a renderer for s. A worker is disconnected once the image is complete
// or its renderer fails.
func NewIrpcServer(s *Scheduler, lg *log.Logger) *irpc.Server {
	if lg == nil {
		lg = log.Default()
	}
	return irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		go func() {
			defer ep.Close()
			lg.Printf("got connection from: %s", ep.RemoteAddr())

			// Each worker provides us with newton.Renderer so we can use it to render tiles of the full image
			rendererIrpcClient, err := newton.NewRendererIrpcClient(ep)
			if err != nil {
				lg.Printf("err: new Renderer client: %v", err)
				return
			}

			if err := s.Render(ep.Context(), rendererIrpcClient); err != nil {
				lg.Printf("err: render on worker %q: %v", ep.RemoteAddr(), err)
			}
		}()
	}))
}

// Serve offers r to the coordinator at the other end of conn and blocks
// until one side hangs up. The coordinator hanging up after the render is a
// normal end and returns nil. When ctx ends first, the connection is closed
// and ctx.Err() is returned.
func Serve(ctx context.Context, conn io.ReadWriteCloser, r newton.Renderer) error {
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(newton.NewRendererIrpcService(r)))

	select {
	case <-ep.Context().Done():
	case <-ctx.Done():
		ep.Close()
		return ctx.Err()
	}

	if cause := context.Cause(ep.Context()); !errors.Is(cause, irpc.ErrEndpointClosedByCounterpart) {
		return cause
	}
	return nil
}
