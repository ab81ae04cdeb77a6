package config

import (
	"errors"
	"io/fs"
)

// Config — алиас для YamlConfig
type Config = YamlConfig

// LoadConfig загружает конфигурацию: сначала YAML (если файл есть), затем применяет переопределения из env.
// Отсутствующий файл не ошибка: используются дефолты + env. Битый YAML — ошибка.
func LoadConfig(path string) (*Config, error) {
	cfg, err := LoadYamlConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || path == "" {
			return LoadConfigFromEnv(), nil
		}
		return nil, err
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	return GetDefaultYamlConfig()
}
