package plugin

import (
	"context"
	"errors"
	"fmt"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// WallpaperPluginRPC implements the go-plugin Plugin interface for
// wallpaper plugins.
type WallpaperPluginRPC struct {
	plugin.Plugin
	Impl WallpaperPlugin
}

// Server returns an RPC server for this plugin.
func (p *WallpaperPluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &WallpaperPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *WallpaperPluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &WallpaperPluginRPCClient{client: c}, nil
}

// WallpaperPluginRPCServer is the plugin side of the RPC connection.
type WallpaperPluginRPCServer struct {
	Impl WallpaperPlugin
}

// Resolve implements the RPC method for wallpaper resolution.
func (s *WallpaperPluginRPCServer) Resolve(req WallpaperRequest, resp *WallpaperResponse) error {
	r, err := s.Impl.Resolve(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = r
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *WallpaperPluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// WallpaperPluginRPCClient is the host side of the RPC connection.
type WallpaperPluginRPCClient struct {
	client *rpc.Client
}

// Resolve calls the remote Resolve method. The call is abandoned when ctx
// is done.
func (c *WallpaperPluginRPCClient) Resolve(ctx context.Context, req WallpaperRequest) (WallpaperResponse, error) {
	var resp WallpaperResponse
	call := c.client.Go("Plugin.Resolve", req, &resp, nil)
	select {
	case <-ctx.Done():
		return WallpaperResponse{}, ctx.Err()
	case <-call.Done:
	}
	if call.Error != nil {
		return WallpaperResponse{}, remoteError(call.Error)
	}
	return resp, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *WallpaperPluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// ErrRemote marks errors returned by the plugin itself.
var ErrRemote = errors.New("wallpaper plugin error")

func remoteError(err error) error {
	var serverErr rpc.ServerError
	if errors.As(err, &serverErr) {
		return fmt.Errorf("%w: %s", ErrRemote, string(serverErr))
	}
	return err
}
