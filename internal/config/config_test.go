package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate cleanly, got: %v", ValidationErrors(errs))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.Server.BaseURL = "" },
			wantErr: "server.base_url",
		},
		{
			name:    "relative base URL",
			mutate:  func(c *Config) { c.Server.BaseURL = "localhost:8000" },
			wantErr: "server.base_url",
		},
		{
			name:    "zero auth timeout",
			mutate:  func(c *Config) { c.Server.AuthTimeoutSeconds = 0 },
			wantErr: "server.auth_timeout_seconds",
		},
		{
			name:    "negative mention limit",
			mutate:  func(c *Config) { c.TUI.MentionLimit = -1 },
			wantErr: "tui.mention_limit",
		},
		{
			name:    "tiny message width",
			mutate:  func(c *Config) { c.TUI.MessageWidth = 5 },
			wantErr: "tui.message_width",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatalf("expected a validation error mentioning %q", tt.wantErr)
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %q, got: %v", tt.wantErr, ValidationErrors(errs))
			}
		})
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("expected count header, got %q", msg)
	}
	if !strings.Contains(msg, "a: bad (got: 1)") {
		t.Errorf("expected first error, got %q", msg)
	}
}

func TestStateDirPrefersExplicitPath(t *testing.T) {
	cfg := Default()
	cfg.Paths.StateDir = "/tmp/bragboard-test"
	if got := cfg.StateDir(); got != "/tmp/bragboard-test" {
		t.Errorf("StateDir() = %q, want the explicit path", got)
	}
}
