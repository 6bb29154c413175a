package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	wikihttp "github.com/tkondo/wikitoc/http"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run executes the serve command. The server stops cleanly when the
// surrounding context is canceled (SIGINT/SIGTERM).
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := wikihttp.NewServer(deps.Scraper, deps.Logger)
	server := &http.Server{
		Addr:    c.Addr,
		Handler: handler,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)

	g.Go(func() error {
		deps.Logger.Info("listening", "addr", c.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
