package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const (
	DefaultLogLevel      = "info"
	DefaultCacheCapacity = 100
	DefaultOutputFormat  = "json"
)

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Cache  CacheConfig  `koanf:"cache"`
	Output OutputConfig `koanf:"output"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	Color bool   `koanf:"color"`
}

type CacheConfig struct {
	Capacity int `koanf:"capacity"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

// Load merges configuration in precedence order: defaults, then the YAML
// config file, then SURFACEGATE_ environment variables, then CLI flags.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"log.level":      DefaultLogLevel,
		"log.color":      true,
		"cache.capacity": DefaultCacheCapacity,
		"output.format":  DefaultOutputFormat,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".surfacegate", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	k.Load(env.Provider("SURFACEGATE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "SURFACEGATE_")), "_", ".", -1)
	}), nil)

	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Cache.Capacity <= 0 {
		cfg.Cache.Capacity = DefaultCacheCapacity
	}

	return &cfg, nil
}
