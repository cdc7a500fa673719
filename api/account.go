package api

import "context"

// GetMe returns basic information about the app the token belongs to
func (c *Client) GetMe(ctx context.Context) (*App, error) {
	return getResult[*App](ctx, c, methodGetMe, nil)
}

// GetBalance returns the app balance for every currency
func (c *Client) GetBalance(ctx context.Context) ([]Balance, error) {
	return getResult[[]Balance](ctx, c, methodGetBalance, nil)
}
