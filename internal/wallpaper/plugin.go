package wallpaper

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	tonalplugin "github.com/jmylchreest/tonal/pkg/plugin"
)

// PluginResolver asks an external wallpaper plugin for the wallpaper. The
// plugin process is started for each Resolve call and killed afterwards.
type PluginResolver struct {
	path   string
	logger hclog.Logger
}

// NewPluginResolver returns a resolver backed by the plugin executable at
// path. A nil logger discards plugin output.
func NewPluginResolver(path string, logger hclog.Logger) *PluginResolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &PluginResolver{path: path, logger: logger.Named("plugin")}
}

// Resolve implements Resolver.
func (r *PluginResolver) Resolve(ctx context.Context, dark bool) (string, error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  tonalplugin.Handshake,
		Plugins:          tonalplugin.PluginMap(nil),
		Cmd:              exec.Command(r.path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           r.logger,
	})
	defer client.Kill()

	rpcClient, err := client.Client()
	if err != nil {
		return "", fmt.Errorf("%w: failed to start plugin %s: %w", ErrWallpaperUnavailable, r.path, err)
	}

	raw, err := rpcClient.Dispense(tonalplugin.Name)
	if err != nil {
		return "", fmt.Errorf("%w: failed to dispense plugin: %w", ErrWallpaperUnavailable, err)
	}
	wp, ok := raw.(*tonalplugin.WallpaperPluginRPCClient)
	if !ok {
		return "", fmt.Errorf("unexpected wallpaper plugin client type %T", raw)
	}

	info, err := wp.GetMetadata()
	if err != nil {
		return "", fmt.Errorf("%w: failed to query plugin metadata: %w", ErrWallpaperUnavailable, err)
	}
	if ok, err := tonalplugin.IsCompatible(info.ProtocolVersion); !ok {
		return "", fmt.Errorf("wallpaper plugin %s: %w", info.Name, err)
	}
	r.logger.Debug("resolving wallpaper", "plugin", info.Name, "version", info.Version, "dark", dark)

	resp, err := wp.Resolve(ctx, tonalplugin.WallpaperRequest{Dark: dark, Desktop: Desktop()})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWallpaperUnavailable, err)
	}
	if resp.Path == "" {
		return "", fmt.Errorf("%w: plugin %s returned no path", ErrWallpaperUnavailable, info.Name)
	}
	return resp.Path, nil
}
