// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// GetAdapterConfig returns the client adapter settings: defaults, then the
// ADAPTER_* environment, then the non-zero fields of override (usually
// filled from CLI flags).
func GetAdapterConfig(override Adapter) (Adapter, error) {
	cfg := defaultConfig().Adapter

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return Adapter{}, err
	}

	for _, src := range []Adapter{envCfg.Adapter, override} {
		if err := mergo.Merge(&cfg, src, mergo.WithOverride); err != nil {
			return Adapter{}, fmt.Errorf("error merging adapter configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Adapter{}, err
	}

	return cfg, nil
}
