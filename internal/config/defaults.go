// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-report-keeper",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
			Version:          "dev",
			LogLevel:         "debug",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  10 << 20,
		},
		Storage: Storage{
			Files: Files{
				Backend:   FilesBackendLocal,
				UploadDir: "./uploads",
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			OrphanCleanupInterval: 10 * time.Minute,
			OrphanCleanupBatch:    100,
		},
	}
}
