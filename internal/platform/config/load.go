package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"

	// LegacyBaseURLEnv is the variable the browser front-end was deployed
	// with. It sets client.base_url when APP_CLIENT_BASE_URL does not.
	LegacyBaseURLEnv = "NEXT_PUBLIC_API_URL"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding the YAML files. Defaults to
// "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration from, lowest precedence first:
//
//  1. built-in defaults;
//  2. {configDir}/base.yaml;
//  3. {configDir}/{profile}.yaml;
//  4. NEXT_PUBLIC_API_URL, for client.base_url only;
//  5. APP_* environment variables.
//
// Env names are matched against the known keys so that underscores inside a
// key survive: APP_CLIENT_BASE_URL is client.base_url and
// APP_UI_REDIRECT_DELAY is ui.redirect_delay.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if url, ok := os.LookupEnv(LegacyBaseURLEnv); ok {
		if err := k.Set("client.base_url", strings.TrimSpace(url)); err != nil {
			return nil, fmt.Errorf("setting client.base_url from %s: %w", LegacyBaseURLEnv, err)
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Client.BaseURL = strings.TrimRight(cfg.Client.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadEnv applies APP_* variables on top of k.
func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	provider := env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
