// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

// chdirTemp moves the test into an empty directory so a stray .env in the
// package directory is never picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestGetenv(t *testing.T) {
	t.Setenv("PHISHSCAN_TEST_SET", "custom")
	t.Setenv("PHISHSCAN_TEST_EMPTY", "")

	if got := getenv("PHISHSCAN_TEST_SET", "default"); got != "custom" {
		t.Errorf("expected custom, got %q", got)
	}
	if got := getenv("PHISHSCAN_TEST_MISSING", "default"); got != "default" {
		t.Errorf("expected default, got %q", got)
	}
	if got := getenv("PHISHSCAN_TEST_EMPTY", "default"); got != "default" {
		t.Errorf("expected default for empty value, got %q", got)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true}, {"t", true}, {"TRUE", true}, {" yes ", true}, {"on", true},
		{"0", false}, {"false", false}, {"off", false}, {"", false}, {"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseBool(tt.input); got != tt.expected {
				t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	if got := parseInt(" 8 ", 4); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
	if got := parseInt("eight", 4); got != 4 {
		t.Errorf("expected default 4, got %d", got)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{"5s", 5 * time.Second},
		{"1m30s", 90 * time.Second},
		{"20", 20 * time.Second},
		{"soon", 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseDuration(tt.input, 7*time.Second); got != tt.expected {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(t *testing.T, c Config)
	}{
		{
			name:  "workers clamped low",
			input: Config{Check: Check{Workers: 0}},
			check: func(t *testing.T, c Config) {
				if c.Check.Workers != 1 {
					t.Errorf("expected 1 worker, got %d", c.Check.Workers)
				}
			},
		},
		{
			name:  "workers clamped high",
			input: Config{Check: Check{Workers: 10000}},
			check: func(t *testing.T, c Config) {
				if c.Check.Workers != 256 {
					t.Errorf("expected 256 workers, got %d", c.Check.Workers)
				}
			},
		},
		{
			name:  "empty values get defaults",
			input: Config{},
			check: func(t *testing.T, c Config) {
				if c.Server.Addr != ":8000" || c.Check.Format != "table" || c.Check.UI != "pretty" ||
					c.Check.Scheduler != "fifo" || c.Log.Level != "info" {
					t.Errorf("unexpected defaults: %+v", c)
				}
				if c.Server.ShutdownTimeout != 15*time.Second {
					t.Errorf("expected shutdown timeout 15s, got %v", c.Server.ShutdownTimeout)
				}
			},
		},
		{
			name:  "case and space folded",
			input: Config{Check: Check{Format: " JSON ", Scheduler: "Priority"}, Log: Log{Level: "DEBUG"}},
			check: func(t *testing.T, c Config) {
				if c.Check.Format != "json" || c.Check.Scheduler != "priority" || c.Log.Level != "debug" {
					t.Errorf("expected folded values, got %+v", c)
				}
			},
		},
		{
			name:  "negative timeouts",
			input: Config{Server: Server{ReadTimeout: -1, WriteTimeout: -1}},
			check: func(t *testing.T, c Config) {
				if c.Server.ReadTimeout != 0 || c.Server.WriteTimeout != 0 {
					t.Errorf("expected zero timeouts, got %v/%v", c.Server.ReadTimeout, c.Server.WriteTimeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			normalize(&cfg)
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg.Check.Scheduler = "random"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown scheduler")
	}

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := DefaultConfig()
	if cfg != def {
		t.Errorf("expected defaults\n got: %+v\nwant: %+v", cfg, def)
	}
}

func TestLoad_Layering(t *testing.T) {
	dir := chdirTemp(t)

	// dotenv sets workers and format; the real environment wins for format.
	writeFile(t, dir, ".env", "PHISHSCAN_WORKERS=6\nPHISHSCAN_FORMAT=yaml\n")
	t.Setenv("PHISHSCAN_FORMAT", "json")
	t.Cleanup(func() { os.Unsetenv("PHISHSCAN_WORKERS") })

	file := writeFile(t, dir, "phishscan.yaml", `
server:
  addr: ":9000"
  read_timeout: 3s
  cors: false
check:
  scheduler: weighted
  explain: true
log:
  level: warn
`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindGlobalFlags(fs)
	BindCheckFlags(fs)
	BindServeFlags(fs)
	if err := fs.Parse([]string{"--addr", ":9100", "--no-color", "-w", "3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigFile: file, Flags: fs})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// flags
	if cfg.Server.Addr != ":9100" {
		t.Errorf("flag should override file addr, got %q", cfg.Server.Addr)
	}
	if cfg.Check.Color {
		t.Error("--no-color should disable color")
	}
	if cfg.Check.Workers != 3 {
		t.Errorf("flag should override dotenv workers, got %d", cfg.Check.Workers)
	}
	// environment
	if cfg.Check.Format != "json" {
		t.Errorf("environment should win over dotenv, got %q", cfg.Check.Format)
	}
	// file
	if cfg.Server.ReadTimeout != 3*time.Second || cfg.Server.CORS {
		t.Errorf("file values not applied: %+v", cfg.Server)
	}
	if cfg.Check.Scheduler != "weighted" || !cfg.Check.Explain || cfg.Log.Level != "warn" {
		t.Errorf("file values not applied: %+v %+v", cfg.Check, cfg.Log)
	}
	// untouched defaults
	if cfg.Server.WriteTimeout != 10*time.Second || !cfg.Server.Metrics {
		t.Errorf("defaults lost: %+v", cfg.Server)
	}
}

func TestLoad_DotEnvOnly(t *testing.T) {
	dir := chdirTemp(t)
	envFile := writeFile(t, dir, "custom.env", "PHISHSCAN_SCHEDULER=priority\n")
	t.Cleanup(func() { os.Unsetenv("PHISHSCAN_SCHEDULER") })

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Check.Scheduler != "priority" {
		t.Errorf("expected scheduler from env file, got %q", cfg.Check.Scheduler)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := chdirTemp(t)

	if _, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Error("expected error for missing config file")
	}
	if _, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "missing.env")}); err == nil {
		t.Error("expected error for missing explicit env file")
	}

	bad := writeFile(t, dir, "bad.yaml", "server: [not, a, map]\n")
	if _, err := Load(LoadOptions{ConfigFile: bad}); err == nil {
		t.Error("expected error for malformed YAML")
	}

	t.Setenv("PHISHSCAN_SCHEDULER", "lottery")
	if _, err := Load(LoadOptions{}); err == nil {
		t.Error("expected validation error for unknown scheduler")
	}
}

func TestConfig_ToYAML(t *testing.T) {
	out, err := DefaultConfig().ToYAML()
	if err != nil {
		t.Fatalf("ToYAML() failed: %v", err)
	}
	for _, want := range []string{"server:", "scheduler: fifo", "level: info"} {
		if !strings.Contains(out, want) {
			t.Errorf("ToYAML() missing %q:\n%s", want, out)
		}
	}
}

func TestEnvHelp(t *testing.T) {
	help := EnvHelp()
	for _, v := range envVars {
		if !strings.Contains(help, EnvPrefix+v.name) {
			t.Errorf("EnvHelp() missing %s", v.name)
		}
	}
}

func TestVersionString(t *testing.T) {
	out := VersionString("1.0.0", "abc123", "2024-01-01")
	if !strings.HasPrefix(out, "phishscan 1.0.0\n") || !strings.Contains(out, "abc123") {
		t.Errorf("unexpected version string: %q", out)
	}
}
