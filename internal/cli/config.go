package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user configuration loaded from ~/.config/arbor/config.toml.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	// Backend is the default backend: file, memory, null, redis, or mongo.
	Backend string `toml:"backend"`

	// Dir is the directory for the file backend.
	// Empty means the XDG data directory.
	Dir string `toml:"dir"`

	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI and MongoDatabase configure the mongo backend.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Listen is the address the serve command binds to.
	Listen string `toml:"listen"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:       "file",
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "arbor",
		},
		Server: ServerConfig{
			Listen: "localhost:8080",
		},
	}
}

// LoadConfig reads the config file at path, applying defaults for
// unset fields.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the user config file, falling back to defaults
// when it is missing or unreadable. Config problems never prevent the CLI
// from starting.
func LoadConfigOrDefault() *Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
