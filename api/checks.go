package api

import (
	"context"
	"strconv"
)

// CreateCheck issues a new check
func (c *Client) CreateCheck(ctx context.Context, params CreateCheckParams) (*Check, error) {
	return postResult[*Check](ctx, c, methodCreateCheck, params)
}

// GetCheck fetches a single check by id
func (c *Client) GetCheck(ctx context.Context, checkID int64) (*Check, error) {
	query := map[string]string{"check_id": strconv.FormatInt(checkID, 10)}
	return getResult[*Check](ctx, c, methodGetCheck, query)
}

// GetChecks lists checks matching params; nil lists everything
func (c *Client) GetChecks(ctx context.Context, params *GetChecksParams) ([]Check, error) {
	return getResult[[]Check](ctx, c, methodGetChecks, params.QueryParams())
}
