// Package nvim adapts the Neovim RPC client to the engine ports.
package nvim

import (
	"context"
	"fmt"
)

// Client implements port.EngineClient.
type Client struct {
	api API
}

// NewClient wraps an already connected API, typically a *nvim.Nvim.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// SetOption implements port.EngineClient.
func (c *Client) SetOption(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.api.SetOption(name, value); err != nil {
		return fmt.Errorf("nvim_set_option %s: %w", name, err)
	}
	return nil
}

// ErrWriteln implements port.EngineClient.
func (c *Client) ErrWriteln(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.api.WritelnErr(line); err != nil {
		return fmt.Errorf("nvim_err_writeln: %w", err)
	}
	return nil
}
