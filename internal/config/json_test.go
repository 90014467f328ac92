package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {
			"token_sign_key": "key",
			"token_issuer": "issuer",
			"token_duration": "1h",
			"password_hash_cost": 11,
			"version": "2.0.0",
			"log_level": "error"
		},
		"storage": {
			"db": {"dsn": "file:reports.db", "driver": "sqlite3"},
			"files": {
				"backend": "s3",
				"upload_dir": "/data",
				"s3": {"endpoint": "minio:9000", "bucket": "reports", "access_key": "a", "secret_key": "s", "use_ssl": true}
			}
		},
		"server": {"http_address": ":8080", "grpc_address": ":9090", "request_timeout": "10s", "max_upload_size": 512},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "3s"},
		"workers": {"orphan_cleanup_interval": "5m", "orphan_cleanup_batch": 10}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)

	assert.Equal(t, "file:reports.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, FilesBackendS3, cfg.Storage.Files.Backend)
	assert.Equal(t, "/data", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "minio:9000", cfg.Storage.Files.S3.Endpoint)
	assert.Equal(t, "reports", cfg.Storage.Files.S3.Bucket)
	assert.Equal(t, "a", cfg.Storage.Files.S3.AccessKey)
	assert.True(t, cfg.Storage.Files.S3.UseSSL)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(512), cfg.Server.MaxUploadSize)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Workers.OrphanCleanupInterval)
	assert.Equal(t, uint64(10), cfg.Workers.OrphanCleanupBatch)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read json config")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeTempJSONConfig(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json config")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))
}
