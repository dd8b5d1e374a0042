package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"careerhub/internal/bootstrap"
	"careerhub/internal/shared/server"
)

var (
	servePort     string
	sweepInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web service",
	Long:  `Start the visitor-facing service: builder, job search, ATS checker and contact form.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides config)")
	serveCmd.Flags().DurationVar(&sweepInterval, "sweep-interval", time.Minute, "How often idle sessions are dropped")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	web, err := bootstrap.BuildWeb(cfg)
	if err != nil {
		return fmt.Errorf("build web service: %w", err)
	}

	return runHTTP(cmd.Context(), "web", server.Addr(cfg.Port), web.Router,
		func(ctx context.Context) { web.Sweep(ctx, sweepInterval) },
	)
}
