// Package currency classifies currency codes accepted by Crypto Pay.
package currency

import "sort"

// Kind is the class of a currency code.
type Kind string

const (
	KindCrypto  Kind = "crypto"
	KindFiat    Kind = "fiat"
	KindUnknown Kind = "unknown"
)

var cryptocurrencies = map[string]struct{}{
	"USDT": {}, "TON": {}, "NOT": {}, "GRAM": {}, "DOGS": {}, "HMSTR": {}, "CATI": {},
	"TRX": {}, "SOL": {}, "MY": {}, "USDC": {}, "BNB": {}, "BTC": {}, "LTC": {},
	"ETH": {}, "TRUMP": {}, "DOGE": {}, "MAJOR": {}, "PEPE": {}, "WIF": {}, "BONK": {},
	"MELANIA": {},
}

var fiats = map[string]struct{}{
	"USD": {}, "EUR": {}, "RUB": {},
}

// IsCryptocurrency reports whether code is a supported crypto asset.
// Codes are matched exactly, so "ton" is not "TON".
func IsCryptocurrency(code string) bool {
	_, ok := cryptocurrencies[code]
	return ok
}

// IsFiat reports whether code is a supported fiat currency.
func IsFiat(code string) bool {
	_, ok := fiats[code]
	return ok
}

// Classify returns the kind of code.
func Classify(code string) Kind {
	switch {
	case IsCryptocurrency(code):
		return KindCrypto
	case IsFiat(code):
		return KindFiat
	default:
		return KindUnknown
	}
}

// Cryptocurrencies returns the supported crypto codes, sorted.
func Cryptocurrencies() []string {
	return sortedKeys(cryptocurrencies)
}

// Fiats returns the supported fiat codes, sorted.
func Fiats() []string {
	return sortedKeys(fiats)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
