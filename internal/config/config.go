package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/jimang/internal/validation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. JIMANG_LOG_LEVEL.
const EnvPrefix = "JIMANG_"

// PathEnvVar overrides the config file location.
const PathEnvVar = "JIMANG_CONFIG"

// Config holds all CLI configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Rules  RulesConfig  `koanf:"rules"`
	Output OutputConfig `koanf:"output"`
	Batch  BatchConfig  `koanf:"batch"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Mode  string `koanf:"mode" validate:"oneof=dev prod production"`
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// RulesConfig selects the academic-year rule set.
type RulesConfig struct {
	// Path to a rules YAML file. Empty uses the embedded rules.
	Path string `koanf:"path"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=text json"`
}

// BatchConfig controls the batch runner.
type BatchConfig struct {
	Workers int `koanf:"workers" validate:"min=1,max=64"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Mode: "dev", Level: "warn"},
		Output: OutputConfig{Format: "text"},
		Batch:  BatchConfig{Workers: 4},
	}
}

// Load layers defaults, the config file (if any), and JIMANG_* environment
// variables, then validates the result. explicitPath, when non-empty, must
// exist.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path, err := resolvePath(explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envKey maps JIMANG_BATCH_WORKERS to batch.workers.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

// resolvePath picks the config file in priority order:
// 1. explicit path (--config)
// 2. JIMANG_CONFIG environment variable
// 3. ./jimang.yaml
// 4. $XDG_CONFIG_HOME/jimang/config.yaml (or ~/.config/jimang/config.yaml)
// Returns "" when no file is found in the optional locations.
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file from %s: %w", PathEnvVar, err)
		}
		return p, nil
	}

	candidates := []string{"jimang.yaml"}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, "jimang", "config.yaml"))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}
