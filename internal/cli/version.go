package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kwargs/pkg/kwargs"
)

const modulePath = "github.com/mesh-intelligence/kwargs"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the kwgen version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "kwgen v%s\nmodule: %s\n", kwargs.Version, modulePath)
			return nil
		},
	}
}
