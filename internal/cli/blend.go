package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/derive"
)

func newBlendCmd() *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "blend <from> <to>",
		Short: "Move one colour's hue towards another's",
		Long: `Blend rotates the hue of <from> towards <to> by --alpha (0-1), keeping the
chroma and tone of <from>. The result is printed as #rrggbb.

Examples:
  tonal blend '#ff0000' '#0000ff'
  tonal blend '#6750a4' '#ff8800' --alpha 0.25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := derive.Blend(args[0], args[1], alpha)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "blend amount (0-1)")
	return cmd
}
