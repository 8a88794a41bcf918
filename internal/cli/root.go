// Package cli implements the kwgen command-line interface, which turns slot
// schemas into generated named-argument packages.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/kwargs/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
}

var flags rootFlags

// cfg is the configuration loaded by the root command before any subcommand
// runs.
var cfg *viper.Viper

// logger writes verbose diagnostics. It discards output unless --verbose is set.
var logger = log.New(io.Discard, "kwgen: ", 0)

// exitError carries the process exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by the command tree to a process exit code.
// Errors without an explicit code are cobra usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "kwgen" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kwgen",
		Short: "Generate named-argument packages from slot schemas",
		Long: "kwgen reads a YAML slot schema and generates the Go package that declares\n" +
			"the slot constants, cell and lookup types, and per-slot constructors.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(io.Discard)
			if flags.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}

			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return sysError(fmt.Errorf("resolve config dir: %w", err))
			}
			v, err := loadConfig(configDir)
			if err != nil {
				return userError(err)
			}
			cfg = v
			logger.Printf("config dir %s", configDir)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/kwgen)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "print diagnostics to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newInspectCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kwgen:", err)
		os.Exit(exitCode(err))
	}
}
