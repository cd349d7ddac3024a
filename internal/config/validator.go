package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// ValidateEnv checks that the .env schema version, when present, matches
// what this build expects
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvSchemaVersion)
	if !ok || schemaVersion == "" {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated",
			EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// Validate checks field constraints on a loaded config
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ", "))
}

// Warnings returns non-fatal issues worth logging at startup
func Warnings(cfg *Config) []string {
	var warnings []string

	if !cfg.ViewCacheEnabled() {
		warnings = append(warnings, "building view cache is disabled; every request reassembles its view")
	}
	if cfg.EventMaxRetries == 0 {
		warnings = append(warnings, "EVENT_MAX_RETRIES is 0; failed event deliveries go straight to the dead-letter file")
	}
	if cfg.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set; /api routes are unauthenticated")
	}
	if cfg.EmpireStatePath == "" {
		warnings = append(warnings, "EMPIRE_STATE_PATH is empty; starting with no stars")
	}

	return warnings
}
