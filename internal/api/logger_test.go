package api

import (
	"testing"

	"github.com/clientdesk/registry-api/internal/infrastructure/config"
)

// SeedAdmin may run before NewRouter and the logger singleton only
// honours its first Init, so every call site must build identical
// options. loggerOptions is that single source.
func TestLoggerOptionsIdenticalAcrossCallSites(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", Env: "production"}

	opts := loggerOptions(cfg)
	if opts.Service != "registry-api" {
		t.Fatalf("service field not set: %+v", opts)
	}
	if opts.Level != "info" {
		t.Fatalf("log level not propagated: %+v", opts)
	}
	if opts.Pretty {
		t.Fatalf("pretty output enabled outside development")
	}

	dev := loggerOptions(&config.Config{LogLevel: "debug", Env: "development"})
	if !dev.Pretty {
		t.Fatalf("pretty output disabled in development")
	}
	if dev.Service != opts.Service {
		t.Fatalf("service field differs between environments")
	}
}
