package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kwargs/internal/codegen"
	"github.com/mesh-intelligence/kwargs/internal/paths"
	"github.com/mesh-intelligence/kwargs/pkg/schema"
)

type generateFlags struct {
	out          string
	kwargsImport string
}

var genFlags generateFlags

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate SCHEMA",
		Short: "Generate the Go package for a slot schema",
		Long: "Generate the Go source declaring the slots of SCHEMA. The output goes to\n" +
			"standard output unless -o names a file or an existing directory.",
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}
	cmd.Flags().StringVarP(&genFlags.out, "out", "o", "", "output file or directory (default: stdout)")
	cmd.Flags().StringVar(&genFlags.kwargsImport, "kwargs-import", "", "import path of the kwargs core package (default from config)")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	schemaPath := args[0]
	s, err := schema.Load(schemaPath)
	if err != nil {
		return userError(err)
	}
	logger.Printf("schema %s: package %s, %d slots, id %s", schemaPath, s.Package, len(s.Slots), s.ID())

	importPath := cfg.GetString(cfgKeyKwargsImport)
	if cmd.Flags().Changed("kwargs-import") {
		importPath = genFlags.kwargsImport
	}

	src, err := codegen.NewGenerator(importPath).Generate(s, schemaPath)
	if err != nil {
		return userError(err)
	}

	out, err := paths.ResolveOutput(genFlags.out, codegen.FileName(s, cfg.GetString(cfgKeyOutputSuffix)))
	if err != nil {
		return sysError(fmt.Errorf("resolve output: %w", err))
	}
	if out == "" {
		w := cmd.OutOrStdout()
		if isTerminal(w) {
			fmt.Fprintln(cmd.ErrOrStderr(), "kwgen: writing generated code to the terminal; use -o to write a file")
		}
		_, err := w.Write(src)
		return err
	}

	if unchanged(out, src) {
		logger.Printf("%s is up to date", out)
		return nil
	}
	if err := writeFileAtomic(out, src); err != nil {
		return sysError(err)
	}
	logger.Printf("wrote %s", out)
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
