// internal/platform/config/help.go
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// envVars documents every variable loadFromEnv reads, in help order.
var envVars = []struct {
	name, help string
}{
	{"ADDR", "listen address of serve (\":8000\")"},
	{"READ_TIMEOUT", "HTTP read timeout (\"10s\" or seconds)"},
	{"WRITE_TIMEOUT", "HTTP write timeout"},
	{"SHUTDOWN_TIMEOUT", "graceful shutdown timeout"},
	{"STATIC_DIR", "directory served at / by serve"},
	{"CORS", "send permissive CORS headers (true/false)"},
	{"METRICS", "expose /metrics (true/false)"},
	{"FORMAT", "check output format: json, yaml, table"},
	{"PRETTY", "indent structured output"},
	{"EXPLAIN", "include explain data"},
	{"COLOR", "colored terminal output"},
	{"UI", "terminal presenter: pretty, raw, json, quiet"},
	{"WORKERS", "concurrent classifications"},
	{"SCHEDULER", "fifo, priority or weighted"},
	{"OUTPUT_DIR", "write check results under this directory"},
	{"LOG_LEVEL", "debug, info, warn, error"},
}

// EnvHelp renders the environment section of the CLI help.
func EnvHelp() string {
	var b strings.Builder
	b.WriteString("Environment variables (flags override them; a .env file is loaded first):\n")
	for _, v := range envVars {
		fmt.Fprintf(&b, "  %-28s %s\n", EnvPrefix+v.name, v.help)
	}
	return b.String()
}

// VersionString is the text printed by `phishscan version`.
func VersionString(version, commit, date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "phishscan %s\n", version)
	fmt.Fprintf(&b, "  Commit:  %s\n", commit)
	fmt.Fprintf(&b, "  Built:   %s\n", date)
	fmt.Fprintf(&b, "  Go:      %s\n", runtime.Version())
	return b.String()
}
