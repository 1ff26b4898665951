package dispatchx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/dispatchx/internal/primitives"
)

// Config is the declarative form of an emitter: a name for diagnostics and
// the optional allow-list. A nil AllowedEvents leaves the emitter
// unrestricted; an empty list permits nothing.
type Config struct {
	Name          string   `json:"name" yaml:"name"`
	AllowedEvents []string `json:"allowedEvents,omitempty" yaml:"allowedEvents,omitempty"`
}

// Validate checks the config: the allow-list, when present, must contain
// only non-empty event names.
func (c *Config) Validate() error {
	if err := primitives.ValidateAllowedEvents(c.AllowedEvents); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}

// FromConfig constructs an Emitter from a validated Config. Additional
// options (a DiagnosticSink, typically) apply on top.
func FromConfig(cfg Config, opts ...Option) (*Emitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("from config %q: %w", cfg.Name, err)
	}
	if cfg.AllowedEvents != nil {
		opts = append(opts, WithAllowedEvents(cfg.AllowedEvents...))
	}
	return New(opts...)
}

// LoadConfig reads a Config from a YAML or JSON file, chosen by extension,
// and validates it before returning.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("json unmarshal %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidArgument, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation after load: %w", err)
	}
	return cfg, nil
}
