// internal/cli/root.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"phishscan/internal/platform/config"
	"phishscan/internal/platform/logx"
)

// BuildInfo is stamped into the binary with -ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	build  BuildInfo
	cfg    config.Config
	logger logx.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	a := &app{build: build, logger: logx.Discard()}

	root := &cobra.Command{
		Use:   "phishscan",
		Short: "Rule-based phishing URL classifier",
		Long: `phishscan - rule-based phishing URL classifier

Scores a URL from 17 lexical signals (IP host, brand names in subdomains,
suspicious TLDs, keywords, shorteners, ...) and classifies it as legitimate,
suspicious or phishing. Nothing is fetched: the URL text is all it looks at.

` + config.EnvHelp(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	config.BindGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newCheckCommand(a),
		newServeCommand(a),
		newConfigCommand(a),
		newVersionCommand(a),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, build BuildInfo) error {
	return NewRootCommand(build).ExecuteContext(ctx)
}

// load resolves the configuration layers and the logger for cmd.
func (a *app) load(cmd *cobra.Command) error {
	fs := cmd.Flags()
	configFile, _ := fs.GetString(config.FlagConfig)
	envFile, _ := fs.GetString(config.FlagEnvFile)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		EnvFile:    envFile,
		Flags:      fs,
	})
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = logx.NewWithWriter(cmd.ErrOrStderr(), logx.ParseLevel(cfg.Log.Level))
	return nil
}
