package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xraph/apispec/logger"
	"github.com/xraph/apispec/render"
	"github.com/xraph/apispec/spec"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		addr string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve <specfile>",
		Short: "Serve an OpenAPI document with its documentation viewers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runServe(cmd.Context(), args[0], addr, dev)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "enable development logging")

	return cmd
}

func runServe(ctx context.Context, specPath, addr string, dev bool) error {
	doc, err := loadDocument(specPath)
	if err != nil {
		return err
	}

	log := logger.NewProduction()
	if dev {
		log = logger.NewDevelopment()
	}
	defer log.Sync()

	plugins := render.DefaultPlugins()
	handler := render.Handler(doc, log, plugins...)

	printBanner(specPath, addr, doc, plugins)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("documentation server started",
		logger.String("addr", addr),
		logger.String("spec", specPath),
	)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve documentation: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown documentation server: %w", err)
	}

	return nil
}

// loadDocument reads an OpenAPI document from a JSON or YAML file. YAML goes
// through its plain-map form so both formats share the JSON field mapping.
func loadDocument(path string) (*spec.OpenAPI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		var m map[string]any
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parse yaml spec: %w", err)
		}
		if raw, err = json.Marshal(m); err != nil {
			return nil, fmt.Errorf("convert yaml spec: %w", err)
		}
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported spec format %q, expected .json, .yaml or .yml", ext)
	}

	var doc spec.OpenAPI
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse spec: %w", err)
	}

	if doc.OpenAPI == "" {
		return nil, fmt.Errorf("%s is not an OpenAPI document: missing openapi version field", path)
	}

	return &doc, nil
}

func printBanner(specPath, addr string, doc *spec.OpenAPI, plugins []render.Plugin) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}

	fmt.Printf("\n  %s %s\n\n", cyan("apispec"), version)
	fmt.Printf("  %s %s %s\n", green("serving"), doc.Info.Title, gray(specPath))

	for _, plugin := range plugins {
		for _, path := range plugin.Paths() {
			fmt.Printf("    %s\n", gray(fmt.Sprintf("http://%s%s", host, path)))
		}
	}

	fmt.Println()
}
