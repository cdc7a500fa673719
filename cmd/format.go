package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/chinmay1088/cryptopay/currency"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02 15:04"

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func colorStatus(status string) string {
	switch status {
	case api.InvoiceStatusPaid, api.CheckStatusActivated, "completed":
		return color.GreenString(status)
	case api.InvoiceStatusActive:
		return color.YellowString(status)
	case api.InvoiceStatusExpired:
		return color.RedString(status)
	default:
		return status
	}
}

func networkLabel(testnet bool) string {
	if testnet {
		return color.YellowString("Testnet")
	}
	return color.GreenString("Mainnet")
}

// parseAmount accepts a positive decimal such as "1.5"
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", value)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

func parseID(kind, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, value)
	}
	return id, nil
}

// normalizeAsset upper-cases code and rejects codes that are not crypto assets
func normalizeAsset(code string) (string, error) {
	asset := strings.ToUpper(strings.TrimSpace(code))
	switch currency.Classify(asset) {
	case currency.KindCrypto:
		return asset, nil
	case currency.KindFiat:
		return "", fmt.Errorf("%s is a fiat currency, use --fiat for fiat invoices", asset)
	default:
		return "", fmt.Errorf("unsupported asset %s. Supported: %s", asset, strings.Join(currency.Cryptocurrencies(), ", "))
	}
}

func normalizeFiat(code string) (string, error) {
	fiat := strings.ToUpper(strings.TrimSpace(code))
	if !currency.IsFiat(fiat) {
		return "", fmt.Errorf("unsupported fiat currency %s. Supported: %s", fiat, strings.Join(currency.Fiats(), ", "))
	}
	return fiat, nil
}

// findRate looks a pair up in an already fetched rate list
func findRate(rates []api.ExchangeRate, source, target string) (decimal.Decimal, bool) {
	for _, rate := range rates {
		if rate.IsValid && strings.EqualFold(rate.Source, source) && strings.EqualFold(rate.Target, target) {
			return rate.Rate, true
		}
	}
	return decimal.Zero, false
}

// pagination maps the --offset/--count flags, zero meaning unset
func pagination(offset, count int) api.Pagination {
	var p api.Pagination
	if offset > 0 {
		p.Offset = api.Ptr(offset)
	}
	if count > 0 {
		p.Count = api.Ptr(count)
	}
	return p
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
