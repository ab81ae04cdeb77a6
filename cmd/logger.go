package cmd

import (
	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/internal/config"
)

// newLogger: --debug → development logger, иначе production с уровнем и форматом из конфига.
func newLogger(debug bool, cfg *config.Config) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Logging.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = level
	}
	if cfg.Logging.Format == "console" {
		zcfg.Encoding = "console"
	}
	return zcfg.Build()
}
