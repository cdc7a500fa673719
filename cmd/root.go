package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "cryptopay",
	Aliases: []string{"cpay"},
	Short:   "Command-line client for the Crypto Pay API",
	Long: `cryptopay talks to the Crypto Pay gateway of @CryptoBot on behalf of
your app. It creates invoices, checks and transfers, lists them, and
shows balances and exchange rates.

Features:
  • Mainnet and Testnet support
  • Encrypted local storage of the API token
  • Invoices, checks and transfers
  • Balances with fiat conversion
  • CSV and JSON export

Configuration:
  CRYPTOPAY_API_TOKEN    token to use instead of the stored one
  CRYPTOPAY_NETWORK      mainnet or testnet
  CRYPTOPAY_BASE_URL     custom gateway URL
  CRYPTOPAY_REDIS_URL    share the asset list through redis
  CRYPTOPAY_METRICS      print request counters after each command

Examples:
  cryptopay login                         # Store your API token
  cryptopay me                            # Show app info
  cryptopay balance --usd                 # Balances with USD values
  cryptopay invoice create TON 1.5        # Request 1.5 TON
  cryptopay transfer 123456 USDT 10       # Send 10 USDT to a user
  cryptopay network testnet               # Switch to testnet mode`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every API request")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(transfersCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cryptopay v%s\n", version)
	},
}
