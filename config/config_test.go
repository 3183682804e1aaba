package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "demo"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug log level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production keeps info level", func(t *testing.T) {
		cfg := ServiceConfig{Name: "demo", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info log level, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", devConfig("demo", "development"), false, ""},
		{"valid production", devConfig("demo", "production"), false, ""},
		{"missing name", devConfig("", "production"), true, "config.name is required"},
		{"invalid environment", devConfig("demo", "qa"), true, "config.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func devConfig(name, env string) ServiceConfig {
	cfg := ServiceConfig{Name: name, Environment: env}
	cfg.Logging.ApplyDefaults()
	return cfg
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: chaindemo
environment: staging
rng:
  a: 0.9
  m: 7
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	type testConfig struct {
		ServiceConfig `mapstructure:",squash"`
		RNG           struct {
			A float64 `mapstructure:"a"`
			M float64 `mapstructure:"m"`
		} `mapstructure:"rng"`
	}

	var cfg testConfig
	if err := LoadConfig("chaindemo", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "chaindemo" {
		t.Errorf("expected name 'chaindemo', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.RNG.A != 0.9 || cfg.RNG.M != 7 {
		t.Errorf("unexpected rng params: %+v", cfg.RNG)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg ServiceConfig
	err := LoadConfig("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/chaindemo/config.yml": true,
		".env.chaindemo":             true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles("chaindemo", LoaderConfig{})
	if files.ConfigFile != "./cmd/chaindemo/config.yml" {
		t.Errorf("unexpected config file %q", files.ConfigFile)
	}
	if files.EnvFile != ".env.chaindemo" {
		t.Errorf("unexpected env file %q", files.EnvFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/c.yml")(&lc)
	WithEnvFile("/.env")(&lc)

	if lc.FileSystem == nil || lc.ConfigFile != "/c.yml" || lc.EnvFile != "/.env" {
		t.Errorf("options not applied: %+v", lc)
	}
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("ENVIRONMENT", "production")
	defer os.Unsetenv("ENVIRONMENT")

	var cfg ServiceConfig
	if err := LoadConfig("demo", &cfg, WithConfigFile("/nonexistent.yml")); err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected env override, got %q", cfg.Environment)
	}
}
