package api

import (
	"context"
	"strings"
)

// GetExchangeRates returns the rates for one source currency. An empty
// source sends no filter and returns every rate.
func (c *Client) GetExchangeRates(ctx context.Context, source string) ([]ExchangeRate, error) {
	query := map[string]string{}
	if source = strings.TrimSpace(source); source != "" {
		query["source"] = source
	}
	return getResult[[]ExchangeRate](ctx, c, methodGetExchangeRates, query)
}

// GetAllExchangeRates returns every rate the gateway knows
func (c *Client) GetAllExchangeRates(ctx context.Context) ([]ExchangeRate, error) {
	return getResult[[]ExchangeRate](ctx, c, methodGetExchangeRates, nil)
}

// GetExchangeRate finds the source/target pair, ignoring case. ok is false
// when the gateway has no such pair. The rate list is not cached.
func (c *Client) GetExchangeRate(ctx context.Context, source, target string) (ExchangeRate, bool, error) {
	rates, err := c.GetAllExchangeRates(ctx)
	if err != nil {
		return ExchangeRate{}, false, err
	}
	for _, rate := range rates {
		if strings.EqualFold(rate.Source, source) && strings.EqualFold(rate.Target, target) {
			return rate, true, nil
		}
	}
	return ExchangeRate{}, false, nil
}
