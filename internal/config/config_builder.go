package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	defaults *StructuredConfig
	configs  []*StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	if b.defaults != nil {
		*config = *b.defaults
	}
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Storage: Storage{Files: Files{
			PasswordsPath: DefaultPasswordsPath,
			KeyPath:       DefaultKeyPath,
		}},
		Cipher: Cipher{Scheme: DefaultCipherScheme},
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *pflag.FlagSet) *configBuilder {
	flagCfg, err := parseFlags(flags)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON loads the JSON file named by the last source that set a path. The
// file sits below env and flags in priority, so it is merged first.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append([]*StructuredConfig{jsonCfg}, b.configs...)

	return b
}
