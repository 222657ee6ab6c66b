package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
	}
}
