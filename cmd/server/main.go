// Command server runs the quantum circuit HTTP API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kegliz/qplay/internal/app"
	"github.com/kegliz/qplay/internal/config"

	_ "github.com/kegliz/qplay/qc/simulator/itsu"
)

var version = "dev"

func main() {
	localOnly := flag.Bool("local-only", false, "bind to 127.0.0.1 instead of all interfaces")
	flag.Parse()

	c := config.New()
	srv, err := app.NewServer(app.ServerOptions{C: c, Version: version})
	if err != nil {
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(c.GetInt("port"), *localOnly)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	case err := <-errCh:
		if err != nil {
			os.Exit(1)
		}
	}
}
