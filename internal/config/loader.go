package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment names read by Load.
const (
	EnvPrefix = "COLLEGERANK_"
	EnvFile   = EnvPrefix + "CONFIG"
)

// source is one layer merged over the defaults, later layers winning.
type source struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// sources lists the layers present in the environment: the YAML file named by
// COLLEGERANK_CONFIG, if any, then COLLEGERANK_* variables.
func sources() []source {
	var out []source
	if path := os.Getenv(EnvFile); path != "" {
		out = append(out, source{name: path, provider: file.Provider(path), parser: yaml.Parser()})
	}
	// COLLEGERANK_MAX_SESSIONS -> max_sessions, matching the koanf tags.
	prefix := strings.ToLower(EnvPrefix)
	out = append(out, source{name: "env", provider: env.Provider(EnvPrefix, ".", func(key string) string {
		return strings.TrimPrefix(strings.ToLower(key), prefix)
	})})
	return out
}

// Load returns the defaults of New overlaid by every source, validated.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")
	for _, src := range sources() {
		if err := k.Load(src.provider, src.parser); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, src.name, err)
		}
	}
	// COLLEGERANK_CONFIG itself lands here as "config".
	k.Delete("config")

	cfg := New(ctx)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
