package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// invoice statuses
const (
	InvoiceStatusActive  = "active"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusExpired = "expired"
)

// check statuses
const (
	CheckStatusActive    = "active"
	CheckStatusActivated = "activated"
)

// App describes the application the API token belongs to
type App struct {
	AppID                        int64  `json:"app_id"`
	Name                         string `json:"name"`
	PaymentProcessingBotUsername string `json:"payment_processing_bot_username"`
}

// Invoice represents a payment request issued by the app
type Invoice struct {
	InvoiceID             int64            `json:"invoice_id"`
	Hash                  string           `json:"hash"`
	Asset                 string           `json:"asset"`
	Amount                decimal.Decimal  `json:"amount"`
	FiatCurrency          string           `json:"fiat_currency,omitempty"`
	FiatAmount            *decimal.Decimal `json:"fiat_amount,omitempty"`
	Description           string           `json:"description,omitempty"`
	BotInvoiceURL         string           `json:"bot_invoice_url"`
	PayURL                string           `json:"pay_url"`
	Status                string           `json:"status"`
	CreatedAt             *time.Time       `json:"created_at,omitempty"`
	ExpirationDate        *time.Time       `json:"expiration_date,omitempty"`
	PaidAt                *time.Time       `json:"paid_at,omitempty"`
	PaidButtonUser        *PaidButtonUser  `json:"paid_btn_user,omitempty"`
	AllowedPaymentMethods []string         `json:"allowed_payment_methods,omitempty"`
	Payload               string           `json:"payload,omitempty"`
}

// PaidButtonUser is the Telegram user who paid an invoice
type PaidButtonUser struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// Check represents a voucher that can be activated by a Telegram user
type Check struct {
	CheckID     int64           `json:"check_id"`
	Hash        string          `json:"hash"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	BotCheckURL string          `json:"bot_check_url"`
	Status      string          `json:"status"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	ActivatedAt *time.Time      `json:"activated_at,omitempty"`
}

// Transfer represents coins sent from the app balance to a user
type Transfer struct {
	TransferID  int64           `json:"transfer_id"`
	SpendID     string          `json:"spend_id,omitempty"`
	UserID      int64           `json:"user_id"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Comment     string          `json:"comment,omitempty"`
}

// Balance is the app balance for one currency
type Balance struct {
	CurrencyCode string          `json:"currency_code"`
	Available    decimal.Decimal `json:"available"`
	Onhold       decimal.Decimal `json:"onhold"`
}

// ExchangeRate is the conversion rate from Source to Target
type ExchangeRate struct {
	IsValid  bool            `json:"is_valid"`
	IsCrypto bool            `json:"is_crypto"`
	IsFiat   bool            `json:"is_fiat"`
	Source   string          `json:"source"`
	Target   string          `json:"target"`
	Rate     decimal.Decimal `json:"rate"`
}

// Asset is a currency supported by the gateway
type Asset struct {
	Code              string           `json:"code"`
	Name              string           `json:"name"`
	IsFiat            bool             `json:"is_fiat"`
	IsBlockchain      bool             `json:"is_blockchain,omitempty"`
	IsStablecoin      bool             `json:"is_stablecoin,omitempty"`
	Decimals          int              `json:"decimals,omitempty"`
	URL               string           `json:"url,omitempty"`
	MinInvoiceAmount  *decimal.Decimal `json:"min_invoice_amount,omitempty"`
	MinTransferAmount *decimal.Decimal `json:"min_transfer_amount,omitempty"`
}
