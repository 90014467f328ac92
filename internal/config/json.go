// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are written as strings ("30s", "1h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db"`

		Files struct {
			Backend   string `json:"backend"`
			UploadDir string `json:"upload_dir"`
			S3        S3     `json:"s3"`
		} `json:"files"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		OrphanCleanupInterval Duration `json:"orphan_cleanup_interval"`
		OrphanCleanupBatch    uint64   `json:"orphan_cleanup_batch"`
	} `json:"workers"`
}

// parseJSON reads the config file at path. Keys missing from the file stay
// zero so that mergo keeps the values of earlier sources.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config %s: %w", path, err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", path, err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
			Files: Files{
				Backend:   jsonCfg.Storage.Files.Backend,
				UploadDir: jsonCfg.Storage.Files.UploadDir,
				S3:        jsonCfg.Storage.Files.S3,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			OrphanCleanupInterval: time.Duration(jsonCfg.Workers.OrphanCleanupInterval),
			OrphanCleanupBatch:    jsonCfg.Workers.OrphanCleanupBatch,
		},
	}

	return cfg, nil
}

// Duration accepts either a Go duration string ("1h", "30s") or an integer
// number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
