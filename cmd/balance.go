package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [asset]",
	Short: "Check app balances",
	Long: `Check the balances of your app.

Examples:
  cryptopay balance          # All non-empty balances
  cryptopay balance TON      # Only TON
  cryptopay balance --usd    # With USD values
  cryptopay balance --all    # Include empty balances`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().Bool("usd", false, "Show USD values")
	balanceCmd.Flags().Bool("all", false, "Include zero balances")
}

func runBalance(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	usdFlag, _ := cmd.Flags().GetBool("usd")
	allFlag, _ := cmd.Flags().GetBool("all")

	balances, err := env.client.GetBalance(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	var rates []api.ExchangeRate
	if usdFlag {
		rates, err = env.client.GetAllExchangeRates(cmd.Context())
		if err != nil {
			fmt.Printf("⚠️  Warning: failed to fetch rates: %v\n", err)
		}
	}

	fmt.Println("💰 App Balances")
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.isTestnet()))
	fmt.Println()

	shown := 0
	for _, balance := range balances {
		if len(args) == 1 && !strings.EqualFold(balance.CurrencyCode, args[0]) {
			continue
		}
		if len(args) == 0 && !allFlag && balance.Available.IsZero() && balance.Onhold.IsZero() {
			continue
		}
		shown++

		fmt.Printf("🪙 %s: %s\n", balance.CurrencyCode, balance.Available.String())
		if balance.Onhold.IsPositive() {
			fmt.Printf("   ⏳ On hold: %s\n", balance.Onhold.String())
		}
		if usdFlag && rates != nil {
			if rate, ok := findRate(rates, balance.CurrencyCode, "USD"); ok {
				fmt.Printf("   💵 USD: $%s\n", balance.Available.Mul(rate).StringFixed(2))
			} else {
				fmt.Println("   💵 USD: no rate")
			}
		}
	}

	if shown == 0 {
		if len(args) == 1 {
			fmt.Printf("No balance for %s\n", strings.ToUpper(args[0]))
		} else {
			fmt.Println("All balances are empty")
		}
	}
	return nil
}
