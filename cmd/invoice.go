package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/spf13/cobra"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Create or inspect an invoice",
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create <asset> <amount>",
	Short: "Create a payment invoice",
	Long: `Create an invoice your users can pay through @CryptoBot.

Examples:
  cryptopay invoice create TON 1.5
  cryptopay invoice create USDT 10 --description "Order #42" --expires-in 1h
  cryptopay invoice create USDT 0 --fiat USD --fiat-amount 9.99`,
	Args: cobra.ExactArgs(2),
	RunE: runInvoiceCreate,
}

var invoiceGetCmd = &cobra.Command{
	Use:   "get <invoice-id>",
	Short: "Show one invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceGet,
}

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices",
	Long: `List invoices created by your app, newest first.

Examples:
  cryptopay invoices
  cryptopay invoices --status paid --asset TON
  cryptopay invoices --offset 20 --count 20`,
	Args: cobra.NoArgs,
	RunE: runInvoices,
}

func init() {
	f := invoiceCreateCmd.Flags()
	f.String("description", "", "Shown to the user, up to 1024 characters")
	f.Duration("expires-in", 0, "Invoice lifetime, e.g. 30m or 2h")
	f.String("fiat", "", "Fiat currency the amount is set in")
	f.String("fiat-amount", "", "Amount in the fiat currency")
	f.String("payload", "", "Data attached to the invoice")
	f.String("hidden-message", "", "Shown to the user after payment")
	f.Bool("allow-comments", true, "Let the user add a comment")
	f.Bool("allow-anonymous", true, "Let the user pay anonymously")

	invoicesCmd.Flags().StringSlice("status", nil, "Filter by status (active, paid, expired)")
	invoicesCmd.Flags().String("asset", "", "Filter by asset")
	invoicesCmd.Flags().Int("offset", 0, "Skip this many invoices")
	invoicesCmd.Flags().Int("count", 0, "Return at most this many invoices (1-1000)")

	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceGetCmd)
}

func invoiceParamsFromFlags(cmd *cobra.Command, args []string) (api.CreateInvoiceParams, error) {
	var params api.CreateInvoiceParams
	f := cmd.Flags()

	asset, err := normalizeAsset(args[0])
	if err != nil {
		return params, err
	}
	params.Asset = asset

	params.Description, _ = f.GetString("description")
	params.Payload, _ = f.GetString("payload")
	params.HiddenMessage, _ = f.GetString("hidden-message")
	params.ExpiresIn, _ = f.GetDuration("expires-in")
	if params.ExpiresIn < 0 {
		return params, fmt.Errorf("expires-in must be positive")
	}

	if f.Changed("allow-comments") {
		allow, _ := f.GetBool("allow-comments")
		params.AllowComments = api.Ptr(allow)
	}
	if f.Changed("allow-anonymous") {
		allow, _ := f.GetBool("allow-anonymous")
		params.AllowAnonymous = api.Ptr(allow)
	}

	fiat, _ := f.GetString("fiat")
	if fiat == "" {
		params.Amount, err = parseAmount(args[1])
		return params, err
	}

	params.FiatCurrency, err = normalizeFiat(fiat)
	if err != nil {
		return params, err
	}
	rawFiatAmount, _ := f.GetString("fiat-amount")
	fiatAmount, err := parseAmount(rawFiatAmount)
	if err != nil {
		return params, fmt.Errorf("fiat-amount: %w", err)
	}
	params.FiatAmount = &fiatAmount
	// the crypto amount may be left at zero when priced in fiat
	params.Amount, _ = parseAmount(args[1])
	return params, nil
}

func runInvoiceCreate(cmd *cobra.Command, args []string) error {
	params, err := invoiceParamsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	invoice, err := env.client.CreateInvoice(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	fmt.Println("✅ Invoice created!")
	fmt.Println()
	printInvoice(invoice)
	return nil
}

func runInvoiceGet(cmd *cobra.Command, args []string) error {
	id, err := parseID("invoice", args[0])
	if err != nil {
		return err
	}

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	invoice, err := env.client.GetInvoice(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if invoice == nil {
		return fmt.Errorf("invoice %d not found", id)
	}
	printInvoice(invoice)
	return nil
}

func runInvoices(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	status, _ := cmd.Flags().GetStringSlice("status")
	asset, _ := cmd.Flags().GetString("asset")
	offset, _ := cmd.Flags().GetInt("offset")
	count, _ := cmd.Flags().GetInt("count")

	params := &api.GetInvoicesParams{
		Pagination: pagination(offset, count),
		Status:     status,
		Asset:      optionalString(strings.ToUpper(asset)),
	}

	fmt.Println("🔄 Loading invoices...")
	startTime := time.Now()

	invoices, err := env.client.GetInvoices(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to fetch invoices: %w", err)
	}

	fmt.Printf("🧾 Invoices (%d)\n", len(invoices))
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.isTestnet()))
	fmt.Println()
	for i := range invoices {
		printInvoiceLine(&invoices[i])
	}

	fmt.Printf("\n⏱️ Loaded in %v\n", time.Since(startTime).Round(time.Millisecond*10))
	return nil
}

func printInvoice(invoice *api.Invoice) {
	fmt.Printf("🧾 Invoice #%d (%s)\n", invoice.InvoiceID, colorStatus(invoice.Status))
	fmt.Printf("   Amount:  %s %s\n", invoice.Amount.String(), invoice.Asset)
	if invoice.FiatAmount != nil {
		fmt.Printf("   Fiat:    %s %s\n", invoice.FiatAmount.String(), invoice.FiatCurrency)
	}
	if invoice.Description != "" {
		fmt.Printf("   Note:    %s\n", invoice.Description)
	}
	fmt.Printf("   Pay URL: %s\n", invoice.PayURL)
	fmt.Printf("   Created: %s\n", formatTime(invoice.CreatedAt))
	if invoice.ExpirationDate != nil {
		fmt.Printf("   Expires: %s\n", formatTime(invoice.ExpirationDate))
	}
	if invoice.PaidAt != nil {
		fmt.Printf("   Paid:    %s\n", formatTime(invoice.PaidAt))
	}
}

func printInvoiceLine(invoice *api.Invoice) {
	fmt.Printf("   #%-10d %-10s %s %s  %s\n",
		invoice.InvoiceID,
		colorStatus(invoice.Status),
		invoice.Amount.String(),
		invoice.Asset,
		formatTime(invoice.CreatedAt),
	)
}
