package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rechttp "github.com/recipeclip/recipeclip/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := &rechttp.Handler{
		Ingestor: deps.Ingestor,
		Recipes:  deps.Recipes,
		Asker:    deps.Asker,
		Healther: deps.Healther,
	}
	srv := rechttp.NewServer(c.Addr, handler)

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
