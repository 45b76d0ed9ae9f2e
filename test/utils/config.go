// Package utils provides shared helpers for the e2e suite.
package utils

import (
	"os"
	"strconv"
	"time"
)

// Environment variables consumed by the e2e suite.
const (
	// EnvEnabled gates the live suite; it runs only when set to "true".
	EnvEnabled = "KEYSPACES_E2E"
	// EnvRegion selects the AWS region the harness queries.
	EnvRegion = "AWS_REGION"
	// EnvNamespace is the namespace custom resources are created in.
	EnvNamespace = "KEYSPACES_E2E_NAMESPACE"
	// EnvCreateWait overrides the settle time after creating a custom
	// resource, in seconds.
	EnvCreateWait = "KEYSPACES_E2E_CREATE_WAIT_SECONDS"
)

// Config holds the environment-derived settings of one e2e run.
type Config struct {
	// Enabled reports whether the live suite should run at all.
	Enabled bool
	// Region is the AWS region of the backing service.
	Region string
	// Namespace is where custom resources are created.
	Namespace string
	// CreateWait is how long to let the controller pick up a freshly
	// created custom resource before asserting on it.
	CreateWait time.Duration
}

// ConfigFromEnv builds the suite configuration from the environment,
// applying defaults for everything but the enable gate.
func ConfigFromEnv() Config {
	cfg := Config{
		Enabled:    os.Getenv(EnvEnabled) == "true",
		Region:     "us-west-2",
		Namespace:  "default",
		CreateWait: 45 * time.Second,
	}
	if region := os.Getenv(EnvRegion); region != "" {
		cfg.Region = region
	}
	if ns := os.Getenv(EnvNamespace); ns != "" {
		cfg.Namespace = ns
	}
	if raw := os.Getenv(EnvCreateWait); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
			cfg.CreateWait = time.Duration(secs) * time.Second
		}
	}
	return cfg
}
