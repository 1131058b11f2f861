package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         int      `yaml:"port" validate:"gte=0,lte=65535"`
	Mode         string   `yaml:"mode" validate:"omitempty,oneof=debug release test"`
	AllowOrigins []string `yaml:"allowOrigins"`
}

// DatasetConfig points at the tabular train status file
type DatasetConfig struct {
	Path      string `yaml:"path" validate:"required"`
	CachePath string `yaml:"cachePath" validate:"omitempty"`
	Comma     string `yaml:"comma" validate:"omitempty,len=1"`
}

// ChartConfig contains delay chart rendering options
type ChartConfig struct {
	Width           int    `yaml:"width" validate:"gte=0"`
	Height          int    `yaml:"height" validate:"gte=0"`
	Format          string `yaml:"format" validate:"omitempty,oneof=png svg"`
	CacheSize       int    `yaml:"cacheSize" validate:"gte=0"`
	CacheTTLSeconds int    `yaml:"cacheTTLSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Chart   ChartConfig   `yaml:"chart"`
}
