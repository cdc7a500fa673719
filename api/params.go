package api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ptr returns a pointer to v, for optional parameter fields.
func Ptr[T any](v T) *T {
	return &v
}

// CreateInvoiceParams is the body of createInvoice. Nil and zero optional
// fields are left out of the request.
type CreateInvoiceParams struct {
	Asset                 string           `json:"asset,omitempty"`
	Amount                decimal.Decimal  `json:"amount"`
	Description           string           `json:"description,omitempty"`
	FiatCurrency          string           `json:"fiat_currency,omitempty"`
	FiatAmount            *decimal.Decimal `json:"fiat_amount,omitempty"`
	ExpiresIn             time.Duration    `json:"-"`
	AllowedPaymentMethods []string         `json:"allowed_payment_methods,omitempty"`
	HiddenMessage         string           `json:"hidden_message,omitempty"`
	PaidButtonName        string           `json:"paid_btn_name,omitempty"`
	PaidButtonURL         string           `json:"paid_btn_url,omitempty"`
	Payload               string           `json:"payload,omitempty"`
	AllowComments         *bool            `json:"allow_comments,omitempty"`
	AllowAnonymous        *bool            `json:"allow_anonymous,omitempty"`
}

// MarshalJSON sends ExpiresIn as whole seconds under expires_in.
func (p CreateInvoiceParams) MarshalJSON() ([]byte, error) {
	type plain CreateInvoiceParams
	return json.Marshal(struct {
		plain
		ExpiresIn int64 `json:"expires_in,omitempty"`
	}{
		plain:     plain(p),
		ExpiresIn: int64(p.ExpiresIn / time.Second),
	})
}

// CreateCheckParams is the body of createCheck.
type CreateCheckParams struct {
	Asset         string          `json:"asset"`
	Amount        decimal.Decimal `json:"amount"`
	Comment       string          `json:"comment,omitempty"`
	PinToUserID   *int64          `json:"pin_to_user_id,omitempty"`
	PinToUsername string          `json:"pin_to_username,omitempty"`
}

// TransferParams is the body of transfer. An empty SpendID is filled with a
// random UUID before sending.
type TransferParams struct {
	UserID                  int64           `json:"user_id"`
	Asset                   string          `json:"asset"`
	Amount                  decimal.Decimal `json:"amount"`
	SpendID                 string          `json:"spend_id,omitempty"`
	Comment                 string          `json:"comment,omitempty"`
	DisableSendNotification *bool           `json:"disable_send_notification,omitempty"`
}

// Pagination holds the offset/count filter shared by every list endpoint.
type Pagination struct {
	Offset *int
	Count  *int
}

func (p Pagination) queryParams() map[string]string {
	params := make(map[string]string)
	if p.Offset != nil {
		params["offset"] = strconv.Itoa(*p.Offset)
	}
	if p.Count != nil {
		params["count"] = strconv.Itoa(*p.Count)
	}
	return params
}

// GetInvoicesParams filters getInvoices.
type GetInvoicesParams struct {
	Pagination
	Status    []string
	Asset     *string
	InvoiceID *int64
}

// QueryParams flattens the filter. Nil fields and empty lists are omitted.
func (p *GetInvoicesParams) QueryParams() map[string]string {
	if p == nil {
		return map[string]string{}
	}
	params := p.Pagination.queryParams()
	putList(params, "status", p.Status)
	putString(params, "asset", p.Asset)
	putID(params, "invoice_id", p.InvoiceID)
	return params
}

// GetChecksParams filters getChecks.
type GetChecksParams struct {
	Pagination
	Status  []string
	Asset   *string
	CheckID *int64
}

// QueryParams flattens the filter. Nil fields and empty lists are omitted.
func (p *GetChecksParams) QueryParams() map[string]string {
	if p == nil {
		return map[string]string{}
	}
	params := p.Pagination.queryParams()
	putList(params, "status", p.Status)
	putString(params, "asset", p.Asset)
	putID(params, "check_id", p.CheckID)
	return params
}

// GetTransfersParams filters getTransfers.
type GetTransfersParams struct {
	Pagination
	Asset      *string
	TransferID *int64
	SpendID    *string
}

// QueryParams flattens the filter. Nil fields are omitted.
func (p *GetTransfersParams) QueryParams() map[string]string {
	if p == nil {
		return map[string]string{}
	}
	params := p.Pagination.queryParams()
	putString(params, "asset", p.Asset)
	putID(params, "transfer_id", p.TransferID)
	putString(params, "spend_id", p.SpendID)
	return params
}

// putList joins values with commas in their original order.
func putList(params map[string]string, key string, values []string) {
	if len(values) == 0 {
		return
	}
	params[key] = strings.Join(values, ",")
}

func putString(params map[string]string, key string, value *string) {
	if value != nil {
		params[key] = *value
	}
}

func putID(params map[string]string, key string, id *int64) {
	if id != nil {
		params[key] = strconv.FormatInt(*id, 10)
	}
}
