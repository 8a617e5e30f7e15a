package config

import (
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{"ADDRESS", "DATABASE_PATH", "PAGE_SIZE", "ADMIN_PAGE_SIZE", "ADMIN_TOKEN_SECRET", "S3_BUCKET_NAME", "EXPORT_INTERVAL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Address)
	assert.Equal(t, "database.db", cfg.DatabasePath)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 20, cfg.AdminPageSize)
	assert.Equal(t, time.Duration(0), cfg.ExportInterval)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.AdminEnabled())
	assert.False(t, cfg.ExportsEnabled())
}

func TestParse_AllFields(t *testing.T) {
	envVars := map[string]string{
		"ADDRESS":            "127.0.0.1:9000",
		"DATABASE_PATH":      "memory",
		"LOG_LEVEL":          "debug",
		"PAGE_SIZE":          "5",
		"ADMIN_PAGE_SIZE":    "50",
		"ADMIN_TOKEN_SECRET": "secret",
		"AWS_S3_REGION":      "us-east-2",
		"S3_BUCKET_NAME":     "notes",
		"S3_ENDPOINT":        "http://localhost:9000",
		"EXPORT_INTERVAL":    "1h",
		"SHUTDOWN_TIMEOUT":   "3s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, "memory", cfg.DatabasePath)
	assert.Equal(t, log.DEBUG, cfg.Level())
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 50, cfg.AdminPageSize)
	assert.True(t, cfg.AdminEnabled())
	assert.True(t, cfg.ExportsEnabled())
	assert.Equal(t, "http://localhost:9000", cfg.S3Endpoint)
	assert.Equal(t, time.Hour, cfg.ExportInterval)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Invalid(t *testing.T) {
	t.Run("non numeric page size", func(t *testing.T) {
		t.Setenv("PAGE_SIZE", "ten")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("zero page size", func(t *testing.T) {
		t.Setenv("PAGE_SIZE", "0")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("EXPORT_INTERVAL", "soon")
		_, err := Parse()
		assert.Error(t, err)
	})
}

func TestLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug":   log.DEBUG,
		"INFO":    log.INFO,
		"warn":    log.WARN,
		"warning": log.WARN,
		"error":   log.ERROR,
		"off":     log.OFF,
		"verbose": log.INFO,
		"":        log.INFO,
	}

	for name, want := range tests {
		cfg := &Config{LogLevel: name}
		assert.Equal(t, want, cfg.Level(), name)
	}
}

func TestExportParameters(t *testing.T) {
	t.Setenv("STICKY_TEST_SECRET", "")
	t.Setenv("STICKY_TEST_BUCKET", "")

	n, err := exportParameters([]types.Parameter{
		{Name: aws.String(envVarsPrefix + "STICKY_TEST_SECRET"), Value: aws.String("s3cr3t")},
		{Name: aws.String(envVarsPrefix + "STICKY_TEST_BUCKET"), Value: aws.String("notes")},
	}, envVarsPrefix)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "s3cr3t", os.Getenv("STICKY_TEST_SECRET"))
	assert.Equal(t, "notes", os.Getenv("STICKY_TEST_BUCKET"))
}
