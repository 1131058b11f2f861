package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from config.yml
const (
	EnvDatasetPath = "TRAIN_TRACKER_DATASET"
	EnvPort        = "TRAIN_TRACKER_PORT"
	EnvGinMode     = "GIN_MODE"
)

// DefaultPaths are probed in order by LoadAppConfig
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns a configuration with every optional value filled in
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 8080, Mode: "release"},
		Chart: ChartConfig{
			Width:           700,
			Height:          400,
			Format:          "png",
			CacheSize:       64,
			CacheTTLSeconds: 300,
		},
	}
}

// LoadAppConfig reads path, or the first of DefaultPaths that exists when path is empty.
// A non-empty datasetOverride replaces dataset.path before validation. With no
// path and no default file the defaults plus environment overrides are used.
func LoadAppConfig(path, datasetOverride string) (AppConfig, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		data = b
	} else {
		for _, p := range DefaultPaths {
			if b, err := os.ReadFile(p); err == nil {
				data = b
				break
			}
		}
	}
	return parse(data, datasetOverride)
}

// parse decodes data, applies datasetOverride and validates the result
func parse(data []byte, datasetOverride string) (AppConfig, error) {
	cfg, err := Decode(data)
	if err != nil {
		return AppConfig{}, err
	}
	if datasetOverride != "" {
		cfg.Dataset.Path = datasetOverride
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Decode reads YAML on top of Default and applies environment overrides.
// Empty data yields the defaults. The result is not validated.
func Decode(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	return cfg, nil
}

// ApplyEnv loads an optional .env file and copies TRAIN_TRACKER_* overrides into cfg
func ApplyEnv(cfg *AppConfig) error {
	// .env is optional for local development
	_ = godotenv.Load()

	if v := os.Getenv(EnvDatasetPath); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvGinMode); v != "" {
		cfg.Server.Mode = v
	}
	return nil
}

// Validate checks the struct tags of cfg
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config field %s: %w", verrs[0].Namespace(), err)
		}
		return err
	}
	return nil
}
