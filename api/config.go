package api

import "time"

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// gateway endpoints
const (
	MainnetBaseURL = "https://pay.crypt.bot/api/"
	TestnetBaseURL = "https://testnet-pay.crypt.bot/api/"

	DefaultBaseURL = MainnetBaseURL
)

const (
	// TokenHeader carries the API token on every request.
	TokenHeader = "Crypto-Pay-API-Token"

	jsonContentType = "application/json; charset=utf-8"

	DefaultTimeout = 30 * time.Second

	// AssetCacheTTL is how long a fetched asset list stays fresh.
	AssetCacheTTL = time.Hour
	assetCacheKey = "assets"
)

// remote method names
const (
	methodGetMe            = "getMe"
	methodCreateInvoice    = "createInvoice"
	methodGetInvoice       = "getInvoice"
	methodGetInvoices      = "getInvoices"
	methodCreateCheck      = "createCheck"
	methodGetCheck         = "getCheck"
	methodGetChecks        = "getChecks"
	methodTransfer         = "transfer"
	methodGetTransfers     = "getTransfers"
	methodGetBalance       = "getBalance"
	methodGetExchangeRates = "getExchangeRates"
	methodGetCurrencies    = "getCurrencies"
)

// BaseURLForNetwork returns the gateway URL for mainnet or testnet.
// Unknown networks fall back to mainnet.
func BaseURLForNetwork(network string) string {
	if network == NetworkTestnet {
		return TestnetBaseURL
	}
	return MainnetBaseURL
}
