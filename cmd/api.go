package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/internal/application"
	"github.com/psds-microservice/vehicle-service/internal/catalog"
	"github.com/psds-microservice/vehicle-service/internal/config"
)

var (
	apiDebug    bool
	apiConfig   string
	apiDataPath string
	apiPort     int
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run HTTP server (GET /vehicles)",
	RunE:  runAPI,
}

func init() {
	addServeFlags(apiCmd)
}

// addServeFlags вешает одни и те же флаги на root и api: оба запускают сервер.
func addServeFlags(c *cobra.Command) {
	c.Flags().BoolVar(&apiDebug, "debug", false, "Debug logging")
	c.Flags().StringVar(&apiConfig, "config", "./config/config.yaml", "Path to config.yaml")
	c.Flags().StringVar(&apiDataPath, "data", "", "Path to vehicle data file (overrides config)")
	c.Flags().IntVar(&apiPort, "port", 0, "HTTP port (overrides config)")
}

func runAPI(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(apiConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if apiDataPath != "" {
		cfg.DataPath = apiDataPath
	}
	if apiPort != 0 {
		cfg.Port = apiPort
	}

	logger, err := newLogger(apiDebug, cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	app, err := application.Bootstrap(cfg, logger, catalog.FileLoader{Path: cfg.DataPath}, Version)
	if err != nil {
		logger.Error("Startup failed", zap.String("data_path", cfg.DataPath), zap.Error(err))
		return fmt.Errorf("application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return app.Run(ctx)
}
