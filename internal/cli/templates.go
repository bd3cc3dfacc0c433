package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/output"
)

func newTemplatesCmd(a *app) *cobra.Command {
	var location string

	loader := func() *output.TemplateLoader {
		if location != "" {
			return output.NewTemplateLoader(location)
		}
		return output.NewTemplateLoader(output.DefaultTemplateDir())
	}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output templates",
		Long: `Manage the templates used by the hex and lua output formats.

Templates dumped to $XDG_CONFIG_HOME/tonal/templates/ can be edited and are
used instead of the embedded ones.

Examples:
  tonal templates list
  tonal templates dump lua.tmpl
  tonal templates dump --force`,
	}
	cmd.PersistentFlags().StringVarP(&location, "location", "l", "", "template directory (default: $XDG_CONFIG_HOME/tonal/templates)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List output templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := loader()
			names, err := l.List()
			if err != nil {
				return err
			}
			table := NewTable([]string{"TEMPLATE", "SOURCE"})
			for _, name := range names {
				source := "embedded"
				if _, fromCustom, err := l.Load(name); err == nil && fromCustom {
					source = l.CustomPath(name)
				}
				table.AddRow([]string{name, source})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	var force bool
	dumpCmd := &cobra.Command{
		Use:   "dump [template...]",
		Short: "Write embedded templates to the template directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loader()
			names, err := l.List()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				for _, name := range args {
					if !slices.Contains(names, name) {
						return fmt.Errorf("unknown template %q (available: %v)", name, names)
					}
				}
				names = args
			}
			for _, name := range names {
				path, err := l.Dump(name, force)
				if err != nil {
					return err
				}
				a.logger.Debug("dumped template", "name", name)
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	dumpCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing custom templates")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}
