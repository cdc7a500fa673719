package api

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
)

// CreateInvoice creates a new payment invoice
func (c *Client) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	return postResult[*Invoice](ctx, c, methodCreateInvoice, params)
}

// CreateInvoiceSimple creates an invoice from just an asset, amount and description
func (c *Client) CreateInvoiceSimple(ctx context.Context, asset string, amount decimal.Decimal, description string) (*Invoice, error) {
	return c.CreateInvoice(ctx, CreateInvoiceParams{
		Asset:       asset,
		Amount:      amount,
		Description: description,
	})
}

// GetInvoice fetches a single invoice by id
func (c *Client) GetInvoice(ctx context.Context, invoiceID int64) (*Invoice, error) {
	query := map[string]string{"invoice_id": strconv.FormatInt(invoiceID, 10)}
	return getResult[*Invoice](ctx, c, methodGetInvoice, query)
}

// GetInvoices lists invoices matching params; nil lists everything
func (c *Client) GetInvoices(ctx context.Context, params *GetInvoicesParams) ([]Invoice, error) {
	return getResult[[]Invoice](ctx, c, methodGetInvoices, params.QueryParams())
}
