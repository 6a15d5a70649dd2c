package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_EnvExpansion(t *testing.T) {
	t.Setenv("LS_TEST_PORT", "8080")
	t.Setenv("LS_TEST_ORIGINS", "http://a.example, http://b.example")
	path := writeConfig(t, `
http:
  port: ${LS_TEST_PORT}
  host: ${LS_TEST_HOST:-127.0.0.1}
cors:
  allowed_origins: ${LS_TEST_ORIGINS}
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.Addr() != "127.0.0.1:8080" {
		t.Errorf("expected Addr=127.0.0.1:8080, got %q", cfg.HTTP.Addr())
	}
	origins := cfg.CORS.Origins()
	if len(origins) != 2 || origins[0] != "http://a.example" || origins[1] != "http://b.example" {
		t.Errorf("unexpected origins: %v", origins)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "http: [unclosed")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_URL", "")
	cfg, err := Load("no-such-env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 3001 {
		t.Errorf("expected Port=3001, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.BasePath != "/api" {
		t.Errorf("expected BasePath=/api, got %q", cfg.HTTP.BasePath)
	}
	if got := cfg.CORS.Origins(); len(got) != 1 || got[0] != "http://localhost:3000" {
		t.Errorf("unexpected origins: %v", got)
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run("value="+tc.value, func(t *testing.T) {
			t.Setenv("LS_TEST_DEBUG", tc.value)
			cfg, err := LoadFile(writeConfig(t, "debug: \"${LS_TEST_DEBUG}\"\n"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bool(cfg.Debug) != tc.want {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tc.want)
			}
		})
	}
}

func TestOrigins_DropsBlanks(t *testing.T) {
	c := CORSConfig{AllowedOrigins: " ,http://x.example,, "}
	got := c.Origins()
	if len(got) != 1 || got[0] != "http://x.example" {
		t.Errorf("unexpected origins: %v", got)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 70000}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_BasePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"/api", false},
		{"/api/v1", false},
		{"api", true},
		{"/api/", true},
	}
	for _, tc := range tests {
		cfg := Config{HTTP: HTTPConfig{Port: 3001, BasePath: tc.path}}
		err := cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("base path %q: err = %v, wantErr %v", tc.path, err, tc.wantErr)
		}
	}
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 3001, RateLimitRPS: -1}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative rate limit")
	}
	cfg = Config{HTTP: HTTPConfig{Port: 3001}, Search: SearchConfig{SnippetContextChars: -1}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative snippet context")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("expected Host=0.0.0.0, got %q", cfg.HTTP.Host)
	}
	if cfg.HTTP.Port != 3001 {
		t.Errorf("expected Port=3001, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.HTTP.MaxBodyBytes != 1<<20 {
		t.Errorf("expected MaxBodyBytes=1MiB, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.HTTP.RateLimitBurst != 0 {
		t.Errorf("expected no burst without rate limit, got %d", cfg.HTTP.RateLimitBurst)
	}
	if cfg.Search.SnippetMaxLength != 200 {
		t.Errorf("expected SnippetMaxLength=200, got %d", cfg.Search.SnippetMaxLength)
	}
	if cfg.Search.SnippetContextChars != 50 {
		t.Errorf("expected SnippetContextChars=50, got %d", cfg.Search.SnippetContextChars)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080, ReadTimeoutSec: 30, RateLimitRPS: 5, RateLimitBurst: 2},
		Search: SearchConfig{SnippetMaxLength: 80, SnippetContextChars: 10},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.RateLimitBurst != 2 {
		t.Errorf("expected RateLimitBurst=2, got %d", cfg.HTTP.RateLimitBurst)
	}
	if cfg.Search.SnippetMaxLength != 80 {
		t.Errorf("expected SnippetMaxLength=80, got %d", cfg.Search.SnippetMaxLength)
	}
}

func TestApplyDefaults_BurstFromRPS(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{RateLimitRPS: 5}}
	cfg.ApplyDefaults()
	if cfg.HTTP.RateLimitBurst != 6 {
		t.Errorf("expected RateLimitBurst=6, got %d", cfg.HTTP.RateLimitBurst)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LS_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("LS_TEST_DOTENV", "")
	_ = os.Unsetenv("LS_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("LS_TEST_DOTENV"); got != "from-file" {
		t.Errorf("expected from-file, got %q", got)
	}
}

func TestLoadDotEnv_MissingIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}
