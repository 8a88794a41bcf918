package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kwargs/internal/codegen"
	"github.com/mesh-intelligence/kwargs/pkg/schema"
)

// ErrStale reports generated code that no longer matches its schema.
var ErrStale = errors.New("generated file is stale")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check SCHEMA FILE",
		Short: "Verify that FILE was generated from SCHEMA",
		Long: "Compare the schema ID recorded in FILE with the ID of SCHEMA. Exits with\n" +
			"status 1 when they differ, so the command can guard CI.",
		Args: cobra.ExactArgs(2),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	schemaPath, genPath := args[0], args[1]

	s, err := schema.Load(schemaPath)
	if err != nil {
		return userError(err)
	}
	src, err := os.ReadFile(genPath)
	if err != nil {
		return sysError(err)
	}
	got, err := codegen.ReadSchemaID(src)
	if err != nil {
		return userError(fmt.Errorf("%s: %w", genPath, err))
	}

	want := s.ID()
	logger.Printf("schema id %s, file id %s", want, got)
	if got != want {
		return userError(fmt.Errorf("%w: %s was generated from schema %s, %s is %s",
			ErrStale, genPath, got, schemaPath, want))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", genPath)
	return nil
}
