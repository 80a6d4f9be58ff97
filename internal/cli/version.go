// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"phishscan/internal/platform/config"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.VersionString(a.build.Version, a.build.Commit, a.build.Date))
			return err
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after applying defaults, the .env file,
the --config file, PHISHSCAN_* variables and flags, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.cfg.ToYAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	config.BindCheckFlags(cmd.Flags())
	config.BindServeFlags(cmd.Flags())
	return cmd
}
