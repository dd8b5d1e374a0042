package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"careerhub/internal/bootstrap"
	"careerhub/internal/shared/server"
)

var apiPort string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the reference remote API",
	Long:  `Start the API the web service calls for job listings, AI review, resume PDFs and contact messages.`,
	RunE:  runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&apiPort, "port", "", "Port to listen on (overrides config api_port)")
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if apiPort != "" {
		cfg.APIPort = apiPort
	}

	app, err := bootstrap.BuildAPI(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("build api: %w", err)
	}
	defer app.Close()

	return runHTTP(cmd.Context(), "api", server.Addr(cfg.APIPort), app.Router)
}
