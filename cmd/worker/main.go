// worker is a CLI worker for the distributed Newton renderer.
// It connects to the coordinator and renders the tiles it is asked for until
// the coordinator closes the connection.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/coder/websocket"

	"github.com/marben/dist_newton/internal/dispatch"
	"github.com/marben/dist_newton/internal/fractal"
)

// main is the entry point for the worker.
// It runs the worker logic and logs any fatal errors.
func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "coordinator websocket endpoint")
	flag.Parse()

	log.Printf("Starting worker...")
	if err := run(*addr); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the coordinator and serves tile requests.
// Returns an error if any step fails.
func run(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Step 1: Connect to the coordinator
	log.Printf("Connecting to coordinator on %s...", addr)
	c, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to coordinator: %w", err)
	}
	conn := websocket.NetConn(ctx, c, websocket.MessageBinary)
	defer conn.Close()

	// Step 2: Create the renderer service, which the coordinator calls to render tiles using our CPU
	renderer := &fractal.TileRenderer{OnTileRender: func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) }}
	if err := dispatch.Serve(ctx, conn, renderer); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	log.Printf("Coordinator finished the render, exiting")
	return nil
}
