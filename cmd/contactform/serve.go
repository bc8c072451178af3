package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/components/webform"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		addr     string
		basePath string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form, its submission endpoint, and metrics over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env values fill in flags left at their defaults.
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				slog.Warn("could not load .env", "error", err)
			}
			applyEnvDefaults(cmd, &addr, &basePath, configPath)

			return runServer(cmd.Context(), addr, basePath, *configPath, watch)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/", "base path to mount the component under")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the form when the configuration file changes")

	return cmd
}

func applyEnvDefaults(cmd *cobra.Command, addr, basePath, configPath *string) {
	if !cmd.Flags().Changed("addr") {
		if v := os.Getenv("CONTACTFORM_ADDR"); v != "" {
			*addr = v
		}
	}
	if !cmd.Flags().Changed("base-path") {
		if v := os.Getenv("CONTACTFORM_BASE_PATH"); v != "" {
			*basePath = v
		}
	}
	if !cmd.Root().PersistentFlags().Changed("config") {
		if v := os.Getenv("CONTACTFORM_CONFIG"); v != "" {
			*configPath = v
		}
	}
}

func runServer(ctx context.Context, addr, basePath, configPath string, watch bool) error {
	src, err := parseSource(configPath)
	if err != nil {
		return err
	}

	metrics := webform.NewMetrics(prometheus.DefaultRegisterer)
	component := webform.New(
		webform.WithSource(src),
		webform.WithOrchestrator(orchestrator.New(orchestrator.WithLoader(cliLoader()))),
		webform.WithMetrics(metrics),
		webform.WithCacheTTL(time.Minute),
	)

	mux := http.NewServeMux()
	pagePath, err := component.RegisterRoutes(mux, basePath)
	if err != nil {
		return err
	}
	mux.Handle("/metrics", promhttp.Handler())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch && !strings.HasPrefix(configPath, "http") {
		watcher, err := webform.NewWatcher(component, webform.WatcherConfig{Path: configPath})
		if err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
		defer watcher.Close()
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("contact form server listening", "addr", addr, "page", pagePath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
