/*
Copyright 2026 the Petstore E2E Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public pet store demo deployment.
const DefaultBaseURL = "http://5.181.109.28:9090/api/v3"

var ErrInvalidConfig = errors.New("invalid test configuration")

type TestConfig struct {
	BaseURL         string
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	SkipIntegration bool
	UseDouble       bool
	ValidateOpenAPI bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a value is present but unusable.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:     getDurationWithDefault("TEST_TIMEOUT", 2*time.Minute),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		UseDouble:       getBoolWithDefault("USE_PETSTORE_DOUBLE", false),
		ValidateOpenAPI: getBoolWithDefault("VALIDATE_OPENAPI", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	return config, nil
}

// WithBaseURL returns a copy of the configuration targeting another
// deployment, e.g. the in-process double.
func (c *TestConfig) WithBaseURL(baseURL string) *TestConfig {
	out := *c
	out.BaseURL = strings.TrimSuffix(baseURL, "/")

	return &out
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../.env",    // From test/api directory
		"../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that configuration values are usable.
func validateRequiredFields(config *TestConfig) error {
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: API_BASE_URL %q: %w", ErrInvalidConfig, config.BaseURL, err)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return fmt.Errorf("%w: API_BASE_URL %q must be an absolute http(s) URL", ErrInvalidConfig, config.BaseURL)
	}

	if base.Host == "" {
		return fmt.Errorf("%w: API_BASE_URL %q has no host", ErrInvalidConfig, config.BaseURL)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	return nil
}
