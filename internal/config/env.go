package config

import (
	"os"
	"strconv"
	"strings"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML)
func ApplyEnvOverrides(cfg *YamlConfig) {
	if v := getEnv("HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("HTTP_PORT", ""); v != "" {
		cfg.Port = getEnvInt("HTTP_PORT", cfg.Port)
	} else if v := getEnv("PORT", ""); v != "" {
		cfg.Port = getEnvInt("PORT", cfg.Port)
	}
	if v := getEnv("GRPC_PORT", ""); v != "" {
		cfg.GRPCPort = v
	}
	if v := getEnv("DATA_PATH", ""); v != "" {
		cfg.DataPath = v
	}

	if p := getEnvInt("HTTP_READ_TIMEOUT_SEC", 0); p > 0 {
		cfg.HTTP.ReadTimeoutSec = p
	}
	if p := getEnvInt("HTTP_WRITE_TIMEOUT_SEC", 0); p > 0 {
		cfg.HTTP.WriteTimeoutSec = p
	}

	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}

	if p := getEnvInt("RATE_LIMIT_REQUESTS", -1); p >= 0 {
		cfg.RateLimit.Requests = p
	}
	if p := getEnvInt("RATE_LIMIT_WINDOW_SEC", 0); p > 0 {
		cfg.RateLimit.WindowSec = p
	}

	if v := getEnv("SWAGGER_ENABLED", ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Swagger.Enabled = b
		}
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *YamlConfig {
	cfg := GetDefaultYamlConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}
