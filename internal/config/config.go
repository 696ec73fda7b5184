package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"jmxify/pkg/readyapi"
)

const (
	SupportedSchema = "v1"
	EnvPrefix       = "JMXIFY_"
)

type LogCfg struct {
	Level string `koanf:"level"` // debug|info|warn|error
	JSON  bool   `koanf:"json"`
}

type SourceCfg struct {
	Namespace string `koanf:"namespace"` // namespace URI of project elements
}

type PulseCfg struct {
	Concurrency int    `koanf:"concurrency"`
	RampUp      string `koanf:"ramp_up"`
	Duration    string `koanf:"duration"`
}

type Config struct {
	SchemaVersion string    `koanf:"schema_version"`
	Log           LogCfg    `koanf:"log"`
	Source        SourceCfg `koanf:"source"`
	Pulse         PulseCfg  `koanf:"pulse"`
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// Load merges the YAML file at path (skipped when path is empty) with
// env-vars prefixed JMXIFY_, where "__" separates nesting levels
// (JMXIFY_LOG__LEVEL=debug sets log.level).
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	if cfg.SchemaVersion != "" && cfg.SchemaVersion != SupportedSchema {
		return cfg, fmt.Errorf("config schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *Config) {
	if c.SchemaVersion == "" {
		c.SchemaVersion = SupportedSchema
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Source.Namespace == "" {
		c.Source.Namespace = readyapi.Namespace
	}
	if c.Pulse.Concurrency <= 0 {
		c.Pulse.Concurrency = 1
	}
	if c.Pulse.RampUp == "" {
		c.Pulse.RampUp = "1s"
	}
	if c.Pulse.Duration == "" {
		c.Pulse.Duration = "10s"
	}
}
