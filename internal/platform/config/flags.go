// internal/platform/config/flags.go
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by the CLI and loadFromFlags.
const (
	FlagConfig   = "config"
	FlagEnvFile  = "env-file"
	FlagLogLevel = "log-level"

	FlagFormat    = "format"
	FlagPretty    = "pretty"
	FlagExplain   = "explain"
	FlagNoColor   = "no-color"
	FlagUI        = "ui"
	FlagWorkers   = "workers"
	FlagScheduler = "scheduler"
	FlagOutputDir = "output-dir"

	FlagAddr            = "addr"
	FlagStaticDir       = "static-dir"
	FlagCORS            = "cors"
	FlagMetrics         = "metrics"
	FlagReadTimeout     = "read-timeout"
	FlagWriteTimeout    = "write-timeout"
	FlagShutdownTimeout = "shutdown-timeout"
)

// BindGlobalFlags registers the flags shared by every command.
func BindGlobalFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.StringP(FlagConfig, "c", "", "YAML configuration file")
	fs.String(FlagEnvFile, "", "dotenv file (default \".env\" when present)")
	fs.String(FlagLogLevel, def.Log.Level, "log level: debug, info, warn, error")
}

// BindCheckFlags registers the flags of the check command.
func BindCheckFlags(fs *pflag.FlagSet) {
	def := DefaultConfig().Check
	fs.StringP(FlagFormat, "f", def.Format, "output format: json, yaml, table")
	fs.Bool(FlagPretty, def.Pretty, "indent structured output")
	fs.BoolP(FlagExplain, "e", def.Explain, "include URL parts, features and triggered rules")
	fs.Bool(FlagNoColor, !def.Color, "disable colors")
	fs.String(FlagUI, def.UI, "terminal presenter: pretty, raw, json, quiet")
	fs.IntP(FlagWorkers, "w", def.Workers, "concurrent classifications")
	fs.String(FlagScheduler, def.Scheduler, "worker scheduling: fifo, priority, weighted")
	fs.StringP(FlagOutputDir, "o", def.OutputDir, "write results to a timestamped file in this directory")
}

// BindServeFlags registers the flags of the serve command.
func BindServeFlags(fs *pflag.FlagSet) {
	def := DefaultConfig().Server
	fs.StringP(FlagAddr, "a", def.Addr, "listen address")
	fs.String(FlagStaticDir, def.StaticDir, "serve static files (index.html) from this directory")
	fs.Bool(FlagCORS, def.CORS, "send permissive CORS headers")
	fs.Bool(FlagMetrics, def.Metrics, "expose Prometheus metrics on /metrics")
	fs.Duration(FlagReadTimeout, def.ReadTimeout, "HTTP read timeout")
	fs.Duration(FlagWriteTimeout, def.WriteTimeout, "HTTP write timeout")
	fs.Duration(FlagShutdownTimeout, def.ShutdownTimeout, "graceful shutdown timeout")
}

// loadFromFlags copies every flag the user set onto cfg. Flags left at
// their default do not override file or environment values.
func loadFromFlags(cfg *Config, fs *pflag.FlagSet) error {
	var firstErr error
	set := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		var err error
		switch f.Name {
		case FlagLogLevel:
			cfg.Log.Level, err = fs.GetString(f.Name)

		case FlagFormat:
			cfg.Check.Format, err = fs.GetString(f.Name)
		case FlagPretty:
			cfg.Check.Pretty, err = fs.GetBool(f.Name)
		case FlagExplain:
			cfg.Check.Explain, err = fs.GetBool(f.Name)
		case FlagNoColor:
			var off bool
			off, err = fs.GetBool(f.Name)
			cfg.Check.Color = !off
		case FlagUI:
			cfg.Check.UI, err = fs.GetString(f.Name)
		case FlagWorkers:
			cfg.Check.Workers, err = fs.GetInt(f.Name)
		case FlagScheduler:
			cfg.Check.Scheduler, err = fs.GetString(f.Name)
		case FlagOutputDir:
			cfg.Check.OutputDir, err = fs.GetString(f.Name)

		case FlagAddr:
			cfg.Server.Addr, err = fs.GetString(f.Name)
		case FlagStaticDir:
			cfg.Server.StaticDir, err = fs.GetString(f.Name)
		case FlagCORS:
			cfg.Server.CORS, err = fs.GetBool(f.Name)
		case FlagMetrics:
			cfg.Server.Metrics, err = fs.GetBool(f.Name)
		case FlagReadTimeout:
			cfg.Server.ReadTimeout, err = fs.GetDuration(f.Name)
		case FlagWriteTimeout:
			cfg.Server.WriteTimeout, err = fs.GetDuration(f.Name)
		case FlagShutdownTimeout:
			cfg.Server.ShutdownTimeout, err = fs.GetDuration(f.Name)
		}
		if err != nil {
			set(fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})

	return firstErr
}
