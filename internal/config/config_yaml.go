package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YamlConfig представляет конфигурацию сервиса из YAML
type YamlConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GRPCPort string `yaml:"grpc_port"`
	DataPath string `yaml:"data_path"`

	HTTP struct {
		ReadTimeoutSec  int `yaml:"read_timeout_sec"`
		WriteTimeoutSec int `yaml:"write_timeout_sec"`
	} `yaml:"http"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	RateLimit struct {
		Requests  int `yaml:"requests"`
		WindowSec int `yaml:"window_sec"`
	} `yaml:"rate_limit"`

	Swagger struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"swagger"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла поверх дефолтов
func LoadYamlConfig(path string) (*YamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultYamlConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// GetDefaultYamlConfig возвращает конфигурацию по умолчанию
func GetDefaultYamlConfig() *YamlConfig {
	cfg := &YamlConfig{
		Host:     "0.0.0.0",
		Port:     8000,
		DataPath: "data.json",
	}
	cfg.HTTP.ReadTimeoutSec = 30
	cfg.HTTP.WriteTimeoutSec = 30
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.Requests = 0
	cfg.RateLimit.WindowSec = 1
	cfg.Swagger.Enabled = true
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

// Addr возвращает адрес HTTP-листенера host:port
func (c *YamlConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GRPCAddr возвращает адрес gRPC-листенера, пустая строка — gRPC выключен
func (c *YamlConfig) GRPCAddr() string {
	if c.GRPCPort == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.Host, c.GRPCPort)
}

func (c *YamlConfig) ReadTimeout() time.Duration {
	return time.Duration(c.HTTP.ReadTimeoutSec) * time.Second
}

func (c *YamlConfig) WriteTimeout() time.Duration {
	return time.Duration(c.HTTP.WriteTimeoutSec) * time.Second
}

// RateLimitWindow возвращает окно лимитера; не меньше секунды
func (c *YamlConfig) RateLimitWindow() time.Duration {
	if c.RateLimit.WindowSec <= 0 {
		return time.Second
	}
	return time.Duration(c.RateLimit.WindowSec) * time.Second
}
