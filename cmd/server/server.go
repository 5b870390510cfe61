// server coordinates a distributed Newton fractal render.
// Workers connect over a websocket on /ws and serve newton.Renderer over irpc.
// They are handed tiles until the image is complete; the server then saves it
// as a P3 image and exits.
//
//	server [-port 8080] [-local k] [-o dir] <n> [width] [height]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/marben/irpc"

	newton "github.com/marben/dist_newton"
	"github.com/marben/dist_newton/internal/args"
	"github.com/marben/dist_newton/internal/dispatch"
	"github.com/marben/dist_newton/internal/fractal"
	"github.com/marben/dist_newton/internal/ppm"
)

func main() {
	prog := filepath.Base(os.Args[0])
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	port := fs.Int("port", 8080, "http port serving /ws and /progress")
	local := fs.Int("local", 0, "in-process renderers working alongside remote workers")
	dir := fs.String("o", ppm.DefaultDir, "output directory")
	var rf args.RenderFlags
	rf.Register(fs)

	fail := func(err error) {
		args.PrintError(os.Stderr, err)
		args.Usage(os.Stderr, prog, fs)
		os.Exit(1)
	}

	a, err := args.Parse(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		args.Usage(os.Stdout, prog, fs)
		return
	}
	if err != nil {
		fail(err)
	}
	cfg, err := rf.Config(a)
	if err != nil {
		fail(err)
	}

	if err := run(cfg, *port, *local, *dir); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(cfg newton.Config, port, local int, dir string) error {
	sched, err := dispatch.NewScheduler(cfg, nil)
	if err != nil {
		return err
	}

	// irpc server with onConnect hook to plug workers into rendering
	irpcServer := dispatch.NewIrpcServer(sched, nil)

	// WEBSOCKET
	websocketListener, httpServer := dispatch.WebServer(context.Background(), port, sched, nil)

	serveErr := make(chan error, 2)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("httpServer: %w", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			serveErr <- fmt.Errorf("irpcServer.Serve ws: %w", err)
		}
	}()
	log.Printf("waiting for workers on ws://localhost:%d/ws", port)

	// local renderers share one Fractal
	localRenderer := &fractal.TileRenderer{}
	for i := 0; i < local; i++ {
		go func() {
			if err := sched.Render(context.Background(), localRenderer); err != nil {
				log.Printf("err: local renderer: %v", err)
			}
		}()
	}

	start := time.Now()
	select {
	case err := <-serveErr:
		return err
	case <-sched.Done():
	}
	buf, err := sched.Wait(context.Background())
	if err != nil {
		return err
	}
	log.Printf("render took %s", time.Since(start))

	path, err := ppm.Save(dir, ppm.FileName(cfg.N, time.Now()), buf)
	if err != nil {
		return err
	}
	log.Printf("fully rendered file saved to %q", path)

	// disconnects workers still attached and stops accepting new ones
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
