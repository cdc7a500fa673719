package cmd

import (
	"testing"
	"time"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount(" 1.50 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("1.5")))

	_, err = parseAmount("0")
	assert.Error(t, err)
	_, err = parseAmount("-1")
	assert.Error(t, err)
	_, err = parseAmount("ten")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("invoice", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("invoice", "0")
	assert.Error(t, err)
	_, err = parseID("check", "abc")
	assert.EqualError(t, err, `invalid check id "abc"`)
}

func TestNormalizeAsset(t *testing.T) {
	asset, err := normalizeAsset(" ton ")
	require.NoError(t, err)
	assert.Equal(t, "TON", asset)

	_, err = normalizeAsset("usd")
	assert.ErrorContains(t, err, "fiat")

	_, err = normalizeAsset("XYZ")
	assert.ErrorContains(t, err, "unsupported asset XYZ")
}

func TestNormalizeFiat(t *testing.T) {
	fiat, err := normalizeFiat("eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", fiat)

	_, err = normalizeFiat("TON")
	assert.Error(t, err)
}

func TestFindRateSkipsInvalid(t *testing.T) {
	rates := []api.ExchangeRate{
		{IsValid: false, Source: "TON", Target: "USD", Rate: decimal.RequireFromString("1")},
		{IsValid: true, Source: "TON", Target: "USD", Rate: decimal.RequireFromString("5.25")},
	}

	rate, ok := findRate(rates, "ton", "usd")
	require.True(t, ok)
	assert.Equal(t, "5.25", rate.String())

	_, ok = findRate(rates, "BTC", "USD")
	assert.False(t, ok)
}

func TestPagination(t *testing.T) {
	empty := pagination(0, 0)
	assert.Nil(t, empty.Offset)
	assert.Nil(t, empty.Count)

	p := pagination(10, 5)
	require.NotNil(t, p.Offset)
	require.NotNil(t, p.Count)
	assert.Equal(t, 10, *p.Offset)
	assert.Equal(t, 5, *p.Count)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "-", formatTime(nil))
	ts := time.Date(2026, 1, 2, 3, 4, 0, 0, time.Local)
	assert.Equal(t, "2026-01-02 03:04", formatTime(&ts))
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString("  "))
	require.NotNil(t, optionalString("TON"))
	assert.Equal(t, "TON", *optionalString("TON"))
}
