// Package main provides the contactform binary: render a configured contact
// form to HTML, validate a configuration, fill the form interactively, build
// a response artifact from the command line, or serve the whole thing over
// HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/internal/config/loader"
	"github.com/goliatone/go-contactform/pkg/config"
)

const appName = "contactform"

var version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "JSON-configured contact form toolkit",
		Long: `Contactform turns a JSON (or YAML) configuration document into a working
contact form: an HTML page whose submissions route to a form backend or a
mailto address, an interactive terminal session, or a standalone response
document.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "contact.json", "configuration path or URL")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		renderCmd(&configPath),
		checkCmd(&configPath),
		fillCmd(&configPath),
		respondCmd(&configPath),
		serveCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s\n", appName, version)
			},
		},
	)

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// cliLoader builds the document loader used by every subcommand. HTTP sources
// are enabled because --config accepts URLs.
func cliLoader() config.Loader {
	return loader.New(config.NewLoaderOptions(config.WithHTTPFallback(30 * time.Second)))
}

func parseSource(raw string) (config.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("configuration path is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return config.ParseSourceURL(path)
	}
	return config.SourceFromFile(path), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "written to %s\n", path)
	return nil
}
