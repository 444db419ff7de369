package config

import "testing"

func TestLoadDebugDefaults(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		debug string
		want  bool
	}{
		{"dev defaults on", "dev", "", true},
		{"test defaults on", "test", "", true},
		{"prod defaults off", "prod", "", false},
		{"prod explicit on", "prod", "true", true},
		{"dev explicit off", "dev", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.env)
			t.Setenv("DEBUG", tt.debug)

			cfg := Load()
			if cfg.Debug != tt.want {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.want)
			}
		})
	}
}

func TestLoadLogDir(t *testing.T) {
	t.Setenv("LOG_DIR", "")
	if got := Load().LogDir; got != "" {
		t.Errorf("LogDir = %q, want empty default", got)
	}

	t.Setenv("LOG_DIR", "/var/log/briefd")
	if got := Load().LogDir; got != "/var/log/briefd" {
		t.Errorf("LogDir = %q, want /var/log/briefd", got)
	}
}

func TestTablePrefixByEnvironment(t *testing.T) {
	t.Setenv("TABLE_PREFIX", "")

	tests := []struct {
		env  string
		want string
	}{
		{"dev", "dev_"},
		{"test", "test_"},
		{"prod", "prod_"},
		{"staging", "dev_"},
	}
	for _, tt := range tests {
		t.Setenv("ENVIRONMENT", tt.env)
		if got := Load().TablePrefix; got != tt.want {
			t.Errorf("TablePrefix(%s) = %q, want %q", tt.env, got, tt.want)
		}
	}

	t.Setenv("TABLE_PREFIX", "custom_")
	if got := Load().TablePrefix; got != "custom_" {
		t.Errorf("TablePrefix override = %q, want custom_", got)
	}
}
