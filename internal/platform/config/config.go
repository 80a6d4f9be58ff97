// internal/platform/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"phishscan/internal/platform/workerpool"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PHISHSCAN_"

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

type Config struct {
	Server Server `yaml:"server" json:"server"`
	Check  Check  `yaml:"check" json:"check"`
	Log    Log    `yaml:"log" json:"log"`
}

// Server configures `phishscan serve`.
type Server struct {
	Addr            string        `yaml:"addr" json:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	StaticDir       string        `yaml:"static_dir" json:"static_dir"` // empty = no static files
	CORS            bool          `yaml:"cors" json:"cors"`
	Metrics         bool          `yaml:"metrics" json:"metrics"`
}

// Check configures `phishscan check`.
type Check struct {
	Format    string `yaml:"format" json:"format"` // json, yaml, table
	Pretty    bool   `yaml:"pretty" json:"pretty"`
	Explain   bool   `yaml:"explain" json:"explain"`
	Color     bool   `yaml:"color" json:"color"`
	UI        string `yaml:"ui" json:"ui"` // pretty, raw, json, quiet
	Workers   int    `yaml:"workers" json:"workers"`
	Scheduler string `yaml:"scheduler" json:"scheduler"`
	OutputDir string `yaml:"output_dir" json:"output_dir"` // empty = stdout
}

type Log struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server: Server{
			Addr:            ":8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			StaticDir:       "",
			CORS:            true,
			Metrics:         true,
		},
		Check: Check{
			Format:    "table",
			Pretty:    true,
			Explain:   false,
			Color:     true,
			UI:        "pretty",
			Workers:   4,
			Scheduler: workerpool.SchedulerFIFO,
			OutputDir: "",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// LoadOptions locates the optional configuration sources.
type LoadOptions struct {
	// ConfigFile is a YAML file. Empty means none; a missing named file is an error.
	ConfigFile string

	// EnvFile is a dotenv file. Empty means DefaultEnvFile, which may be absent.
	EnvFile string

	// Flags holds parsed command-line flags; only flags set by the user apply.
	Flags *pflag.FlagSet
}

// Load builds the configuration, each layer overriding the previous one:
// defaults, dotenv file, YAML file, PHISHSCAN_* environment, flags.
func Load(opts LoadOptions) (Config, error) {
	cfg := DefaultConfig()

	if err := loadDotEnv(opts.EnvFile); err != nil {
		return cfg, err
	}

	if opts.ConfigFile != "" {
		if err := loadFromFile(&cfg, opts.ConfigFile); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)

	if opts.Flags != nil {
		if err := loadFromFlags(&cfg, opts.Flags); err != nil {
			return cfg, err
		}
	}

	normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadDotEnv exports the variables of a dotenv file into the process
// environment. Variables already set are left alone.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// loadFromFile decodes a YAML file over cfg. Keys absent from the file keep
// their current value.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// loadFromEnv reads PHISHSCAN_* variables. Unparsable values are ignored.
func loadFromEnv(cfg *Config) {
	// Server
	if v := getenv(EnvPrefix+"ADDR", ""); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv(EnvPrefix+"READ_TIMEOUT", ""); v != "" {
		cfg.Server.ReadTimeout = parseDuration(v, cfg.Server.ReadTimeout)
	}
	if v := getenv(EnvPrefix+"WRITE_TIMEOUT", ""); v != "" {
		cfg.Server.WriteTimeout = parseDuration(v, cfg.Server.WriteTimeout)
	}
	if v := getenv(EnvPrefix+"SHUTDOWN_TIMEOUT", ""); v != "" {
		cfg.Server.ShutdownTimeout = parseDuration(v, cfg.Server.ShutdownTimeout)
	}
	if v := getenv(EnvPrefix+"STATIC_DIR", ""); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := getenv(EnvPrefix+"CORS", ""); v != "" {
		cfg.Server.CORS = parseBool(v)
	}
	if v := getenv(EnvPrefix+"METRICS", ""); v != "" {
		cfg.Server.Metrics = parseBool(v)
	}

	// Check
	if v := getenv(EnvPrefix+"FORMAT", ""); v != "" {
		cfg.Check.Format = v
	}
	if v := getenv(EnvPrefix+"PRETTY", ""); v != "" {
		cfg.Check.Pretty = parseBool(v)
	}
	if v := getenv(EnvPrefix+"EXPLAIN", ""); v != "" {
		cfg.Check.Explain = parseBool(v)
	}
	if v := getenv(EnvPrefix+"COLOR", ""); v != "" {
		cfg.Check.Color = parseBool(v)
	}
	if v := getenv(EnvPrefix+"UI", ""); v != "" {
		cfg.Check.UI = v
	}
	if v := getenv(EnvPrefix+"WORKERS", ""); v != "" {
		cfg.Check.Workers = parseInt(v, cfg.Check.Workers)
	}
	if v := getenv(EnvPrefix+"SCHEDULER", ""); v != "" {
		cfg.Check.Scheduler = v
	}
	if v := getenv(EnvPrefix+"OUTPUT_DIR", ""); v != "" {
		cfg.Check.OutputDir = v
	}

	// Log
	if v := getenv(EnvPrefix+"LOG_LEVEL", ""); v != "" {
		cfg.Log.Level = v
	}
}

func normalize(c *Config) {
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.ReadTimeout < 0 {
		c.Server.ReadTimeout = 0
	}
	if c.Server.WriteTimeout < 0 {
		c.Server.WriteTimeout = 0
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}

	c.Check.Format = strings.ToLower(strings.TrimSpace(c.Check.Format))
	if c.Check.Format == "" {
		c.Check.Format = "table"
	}
	c.Check.UI = strings.ToLower(strings.TrimSpace(c.Check.UI))
	if c.Check.UI == "" {
		c.Check.UI = "pretty"
	}
	if c.Check.Workers < 1 {
		c.Check.Workers = 1
	}
	if c.Check.Workers > 256 {
		c.Check.Workers = 256
	}
	c.Check.Scheduler = strings.ToLower(strings.TrimSpace(c.Check.Scheduler))
	if c.Check.Scheduler == "" {
		c.Check.Scheduler = workerpool.SchedulerFIFO
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects values normalize cannot repair.
func (c Config) Validate() error {
	if _, err := workerpool.SchedulerByName(c.Check.Scheduler); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// ToYAML renders the effective configuration.
func (c Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// parseDuration accepts Go durations ("5s") or a bare number of seconds.
func parseDuration(v string, def time.Duration) time.Duration {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return def
}
