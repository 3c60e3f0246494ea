package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gofhir/metadata/pkg/loader"
	"github.com/gofhir/metadata/pkg/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{KeyPackagePath, KeyFHIRVersion, KeyLogLevel, KeyOutput} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{EnvFile: missingEnvFile(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PackagePath != loader.DefaultPackagePath() {
		t.Errorf("PackagePath = %q, want %q", cfg.PackagePath, loader.DefaultPackagePath())
	}
	if cfg.FHIRVersion != "4.0.1" {
		t.Errorf("FHIRVersion = %q, want 4.0.1", cfg.FHIRVersion)
	}
	if cfg.Level() != logger.LevelInfo {
		t.Errorf("Level() = %v, want INFO", cfg.Level())
	}
	if cfg.JSON() {
		t.Error("default output should be text")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "FHIRMETA_PACKAGE_PATH=/from/dotenv\nFHIRMETA_LOG_LEVEL=debug\nFHIRMETA_OUTPUT=json\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FHIRMETA_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	flags.String("package-path", "", "")
	if err := flags.Parse([]string{"--output", "TEXT"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(Options{
		EnvFile: envFile,
		Flags: map[string]*pflag.Flag{
			KeyOutput:      flags.Lookup("output"),
			KeyPackagePath: flags.Lookup("package-path"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PackagePath != "/from/dotenv" {
		t.Errorf("PackagePath = %q, want value from .env (unset flag must not win)", cfg.PackagePath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, environment should beat .env", cfg.LogLevel)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, explicit flag should beat .env", cfg.Output)
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("FHIRMETA_OUTPUT", "yaml")
	t.Setenv("FHIRMETA_FHIR_VERSION", "5.0.0")

	_, err := Load(Options{EnvFile: missingEnvFile(t)})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{FHIRVersion: "4.0.1", LogLevel: "debug", Output: OutputJSON}, false},
		{"bad output", Config{FHIRVersion: "4.0.1", LogLevel: "info", Output: "xml"}, true},
		{"bad level", Config{FHIRVersion: "4.0.1", LogLevel: "loud", Output: OutputText}, true},
		{"bad version", Config{FHIRVersion: "3.0.2", LogLevel: "info", Output: OutputText}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
