// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tonal/internal/version"
)

// app is the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	logger hclog.Logger
}

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "Material You palettes from colours and wallpapers",
		Long: `Tonal derives a Material You colour scheme from a colour, an image or the
current desktop wallpaper, and harmonizes your own palette towards it.

Settings are read from flags, then TONAL_* environment variables, then
$XDG_CONFIG_HOME/tonal/config.{toml,yaml,json}.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().String("config", "", "config file (default: $XDG_CONFIG_HOME/tonal/config.toml)")
	rootCmd.PersistentFlags().String("wallpaper-plugin", "", "executable that resolves the wallpaper path")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newDeriveCmd(a),
		newBlendCmd(),
		newWallpaperCmd(a),
		newSchemesCmd(),
		newTemplatesCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger for the command being
// run.
func (a *app) setup(cmd *cobra.Command) error {
	if err := loadConfig(a.v, cmd.Flags()); err != nil {
		return err
	}
	a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"), a.v.GetBool("quiet"))
	if file := a.v.ConfigFileUsed(); file != "" {
		a.logger.Debug("loaded config", "path", file)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
