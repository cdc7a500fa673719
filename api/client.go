package api

// Crypto Pay API Client-
//
// Files:
//   config.go      - endpoints, header names and timing constants
//   types.go       - result structs (invoice, check, transfer, balance, etc.)
//   params.go      - request parameters and list-filter query serialization
//   errors.go      - APIError and TransportError
//   envelope.go    - response envelope decoding
//   base.go        - core client functionality (Client, NewClient, get/post)
//   cache.go       - single-entry TTL cache and getCurrencies lookup
//   redis_cache.go - shared asset cache backed by redis
//   metrics.go     - prometheus request metrics
//   account.go     - getMe, getBalance
//   invoices.go    - createInvoice, getInvoice, getInvoices
//   checks.go      - createCheck, getCheck, getChecks
//   transfers.go   - transfer, getTransfers
//   rates.go       - getExchangeRates and pair lookup
//
// Usage:
//   client, err := api.NewClient(token)                        // from base.go
//   invoice, err := client.CreateInvoice(ctx, params)          // from invoices.go
//   rate, ok, err := client.GetExchangeRate(ctx, "TON", "USD") // from rates.go
