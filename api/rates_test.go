package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesBody = `{"ok":true,"result":[
  {"is_valid":true,"is_crypto":true,"is_fiat":false,"source":"TON","target":"USD","rate":"5.2"},
  {"is_valid":true,"is_crypto":true,"is_fiat":false,"source":"USDT","target":"USD","rate":"1.0001"},
  {"is_valid":true,"is_crypto":true,"is_fiat":false,"source":"USDT","target":"USD","rate":"9"}
]}`

func TestGetExchangeRateCaseInsensitive(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/getExchangeRates", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, ratesBody)
	})

	rate, ok, err := client.GetExchangeRate(context.Background(), "usdt", "usd")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "USDT", rate.Source)
	assert.Equal(t, "USD", rate.Target)
	assert.Equal(t, "1.0001", rate.Rate.String(), "first match wins")

	_, _, err = client.GetExchangeRate(context.Background(), "TON", "USD")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "rates are never cached")
}

func TestGetExchangeRateNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ratesBody)
	})

	rate, ok, err := client.GetExchangeRate(context.Background(), "BTC", "RUB")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ExchangeRate{}, rate)
}

func TestGetExchangeRatePropagatesErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"ok":false,"error_code":401,"description":"UNAUTHORIZED"}`)
	})

	_, ok, err := client.GetExchangeRate(context.Background(), "TON", "USD")
	assert.False(t, ok)
	assert.True(t, IsAPIError(err))
}

func TestGetExchangeRatesBySource(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TON", r.URL.Query().Get("source"))
		writeJSON(w, http.StatusOK, `{"ok":true,"result":[{"source":"TON","target":"EUR","rate":"4.8","is_valid":true}]}`)
	})

	rates, err := client.GetExchangeRates(context.Background(), "TON")
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "EUR", rates[0].Target)
	assert.True(t, rates[0].IsValid)
}

func TestGetExchangeRatesEmptySourceSendsNoFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `{"ok":true,"result":[]}`)
	})

	rates, err := client.GetExchangeRates(context.Background(), " ")
	require.NoError(t, err)
	assert.Empty(t, rates)
}
