package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kwargs/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the kwgen configuration directory",
		Long:  "Create the configuration directory and write a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := configPath(configDir)
	written, err := writeConfigIfMissing(path)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
	}
	return nil
}
