// Package main is the careerhub command: the web service, the reference API and their tooling.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careerhub/internal/shared/config"
	"careerhub/internal/shared/telemetry"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "careerhub",
	Short: "Resume builder, job search and ATS checker",
	Long: "careerhub serves the resume builder, job search, ATS checker and contact pages, " +
		"and ships a reference implementation of the remote API they call.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file (default careerhub.yaml)")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	telemetry.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
