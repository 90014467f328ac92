// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	return parseEnvWithOptions(cfg, env.Options{})
}

// parseEnvWithOptions is parseEnv with explicit library options; tests pass
// a fixed Environment map instead of touching the process environment.
func parseEnvWithOptions(cfg any, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
