package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var errNilTransferParams = errors.New("transfer params are required")

// Transfer sends coins from the app balance to a Telegram user. An empty
// SpendID is filled with a random UUID and written back into params, so
// calling Transfer again with the same params reuses the id and the gateway
// rejects the repeat instead of paying twice.
func (c *Client) Transfer(ctx context.Context, params *TransferParams) (*Transfer, error) {
	if params == nil {
		return nil, errNilTransferParams
	}
	if params.SpendID == "" {
		params.SpendID = uuid.NewString()
	}
	return postResult[*Transfer](ctx, c, methodTransfer, params)
}

// GetTransfers lists transfers matching params; nil lists everything
func (c *Client) GetTransfers(ctx context.Context, params *GetTransfersParams) ([]Transfer, error) {
	return getResult[[]Transfer](ctx, c, methodGetTransfers, params.QueryParams())
}
