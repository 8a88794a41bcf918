package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kwargs/pkg/schema"
)

var inspectJSON bool

// inspectOutput is the --json form of kwgen inspect.
type inspectOutput struct {
	SchemaID string        `json:"schema_id"`
	Package  string        `json:"package"`
	Imports  []string      `json:"imports,omitempty"`
	Slots    []inspectSlot `json:"slots"`
}

type inspectSlot struct {
	Index int `json:"index"`
	schema.Slot
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect SCHEMA",
		Short: "Print the slots declared by a schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := schema.Load(args[0])
	if err != nil {
		return userError(err)
	}

	out := inspectOutput{
		SchemaID: s.ID(),
		Package:  s.Package,
		Imports:  s.Imports,
	}
	for i, slot := range s.Slots {
		out.Slots = append(out.Slots, inspectSlot{Index: i, Slot: slot})
	}

	if inspectJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "package:   %s\n", out.Package)
	fmt.Fprintf(w, "schema id: %s\n\n", out.SchemaID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tNAME\tTYPE\tDOC")
	for _, slot := range out.Slots {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", slot.Index, slot.Name, slot.Type, slot.Doc)
	}
	return tw.Flush()
}
