package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_NoVersion(t *testing.T) {
	clearEnvVars(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_VersionMatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")

	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "json",
		Environment:     "test",
		ServiceName:     "build-queue",
		CatalogPath:     "designs.yaml",
		SettleInterval:  time.Second,
		EventRetryDelay: time.Second,
		DeadLetterPath:  "dl.jsonl",
		ShutdownTimeout: time.Second,
		DBMaxConns:      1,
		RateLimitRPS:    1,
		RateLimitBurst:  1,
	}
	assert.NoError(t, Validate(&valid))

	broken := valid
	broken.ServiceName = ""
	broken.DeadLetterPath = ""

	err := Validate(&broken)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ServiceName failed required")
	assert.Contains(t, err.Error(), "DeadLetterPath failed required")
}
