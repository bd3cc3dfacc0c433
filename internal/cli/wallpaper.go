package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/wallpaper"
)

func newWallpaperCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Print the current wallpaper path",
		Long: `Print the path of the image the desktop currently uses as its wallpaper.

This is the image "tonal derive --image wallpaper" reads. Supported: KDE
Plasma, GNOME, Cinnamon and the swww, hyprpaper and swaybg daemons. Other
desktops can be served by an external program set with --wallpaper-plugin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug("detecting wallpaper", "desktop", wallpaper.Desktop())
			path, err := a.resolver().Resolve(cmd.Context(), a.v.GetBool("dark"))
			if err != nil {
				return err
			}
			// A directory resolves to one of its images, as derive would use.
			path, err = image.ResolveImagePath(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolP("dark", "d", false, "resolve the dark-mode wallpaper")
	return cmd
}
