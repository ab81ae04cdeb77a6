package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/psds-microservice/vehicle-service/internal/catalog"
	"github.com/psds-microservice/vehicle-service/internal/command"
	"github.com/psds-microservice/vehicle-service/internal/config"
)

var (
	checkConfig   string
	checkDataPath string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the vehicle data file without starting the server",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkConfig, "config", "./config/config.yaml", "Path to config.yaml")
	checkCmd.Flags().StringVar(&checkDataPath, "data", "", "Path to vehicle data file (overrides config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(checkConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if checkDataPath != "" {
		cfg.DataPath = checkDataPath
	}

	n, err := command.Check(catalog.FileLoader{Path: cfg.DataPath})
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "check: ok, %d vehicles in %s\n", n, cfg.DataPath)
	return nil
}
