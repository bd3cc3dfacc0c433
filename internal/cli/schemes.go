package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/derive"
	"github.com/jmylchreest/tonal/internal/scheme"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List scheme variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := NewTable([]string{"SCHEME", "DESCRIPTION"})
			for _, v := range scheme.Variants() {
				name := v.String()
				if name == derive.DefaultScheme {
					name += "*"
				}
				table.AddRow([]string{name, v.Description()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
