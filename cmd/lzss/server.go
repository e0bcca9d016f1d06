package main

import (
	"context"
	"errors"
	golog "log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/ei-projects/lzss/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run compression HTTP service",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listen") {
				cfg.ListenAddr, _ = cmd.Flags().GetString("listen")
			}
			p, err := cfg.Params()
			if err != nil {
				return err
			}
			handler := &api.Handler{
				Params:        p,
				MaxBodySize:   cfg.MaxBodySize,
				MaxOutputSize: cfg.MaxOutputSize,
				Logger:        log,
			}
			serverMainLoop(func(ctx context.Context) error {
				return serveHTTP(ctx, cfg.ListenAddr, handler)
			})
			return nil
		},
	}
	cmd.Flags().String("listen", cfg.ListenAddr, "Set http server address")
	return cmd
}

func serveHTTP(ctx context.Context, addr string, h *api.Handler) error {
	logWriter := log.Writer()
	defer logWriter.Close()
	server := http.Server{
		Addr:              addr,
		ErrorLog:          golog.New(logWriter, "", 0),
		Handler:           api.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	doneChan := make(chan error, 1)
	go func() {
		log.Infof("Listening on http:%s with params %s", server.Addr, h.Params)
		doneChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx) // nolint: errcheck
		return ctx.Err()
	case err := <-doneChan:
		return err
	}
}

func serverMainLoop(workers ...func(ctx context.Context) error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case sig := <-c:
			log.Infof("Got signal: %v. Stopping server", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var wg sync.WaitGroup
	startWorker := func(name string, f func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f(ctx)
			if errors.Is(err, context.Canceled) {
				log.Debugf("%s cancelled", name)
			} else {
				log.Errorf("%s failed: %s", name, err)
				cancel()
			}
		}()
	}

	for _, w := range workers {
		startWorker("HTTP", w)
	}

	log.Info("Server started")
	<-ctx.Done()

	log.Info("Server is stopping...")
	wg.Wait()

	log.Info("Server stopped")
}
