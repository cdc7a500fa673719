package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <user-id> <asset> <amount>",
	Short: "Send coins from the app balance to a user",
	Long: `Send coins from your app balance to a Telegram user.

Repeating a transfer with the same --spend-id never pays twice. When no
spend id is given a random one is used and printed.

Examples:
  cryptopay transfer 123456789 USDT 10
  cryptopay transfer 123456789 TON 0.5 --comment "Prize" --spend-id prize-42`,
	Args: cobra.ExactArgs(3),
	RunE: runTransfer,
}

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "List completed transfers",
	Args:  cobra.NoArgs,
	RunE:  runTransfers,
}

func init() {
	transferCmd.Flags().String("comment", "", "Shown to the user, up to 1024 characters")
	transferCmd.Flags().String("spend-id", "", "Idempotency key, up to 64 characters")
	transferCmd.Flags().Bool("silent", false, "Do not notify the user")
	transferCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")

	transfersCmd.Flags().String("asset", "", "Filter by asset")
	transfersCmd.Flags().String("spend-id", "", "Filter by spend id")
	transfersCmd.Flags().Int("offset", 0, "Skip this many transfers")
	transfersCmd.Flags().Int("count", 0, "Return at most this many transfers (1-1000)")
}

func runTransfer(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user", args[0])
	if err != nil {
		return err
	}
	asset, err := normalizeAsset(args[1])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	comment, _ := cmd.Flags().GetString("comment")
	spendID, _ := cmd.Flags().GetString("spend-id")
	silent, _ := cmd.Flags().GetBool("silent")
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	fmt.Println("💸 Transfer")
	fmt.Printf("   To user: %d\n", userID)
	fmt.Printf("   Amount:  %s %s\n", amount.String(), asset)

	if !skipConfirm && !getTransferConfirmation(env.isTestnet()) {
		fmt.Println("❌ Transfer cancelled by user")
		return nil
	}

	params := api.TransferParams{
		UserID:  userID,
		Asset:   asset,
		Amount:  amount,
		SpendID: strings.TrimSpace(spendID),
		Comment: comment,
	}
	if silent {
		params.DisableSendNotification = api.Ptr(true)
	}

	transfer, err := env.client.Transfer(cmd.Context(), &params)
	if err != nil {
		return fmt.Errorf("failed to transfer (retry with --spend-id %s): %w", params.SpendID, err)
	}

	fmt.Println("✅ Transfer sent!")
	printTransfer(transfer)
	return nil
}

func runTransfers(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	asset, _ := cmd.Flags().GetString("asset")
	spendID, _ := cmd.Flags().GetString("spend-id")
	offset, _ := cmd.Flags().GetInt("offset")
	count, _ := cmd.Flags().GetInt("count")

	params := &api.GetTransfersParams{
		Pagination: pagination(offset, count),
		Asset:      optionalString(strings.ToUpper(asset)),
		SpendID:    optionalString(spendID),
	}

	fmt.Println("🔄 Loading transfers...")
	startTime := time.Now()

	transfers, err := env.client.GetTransfers(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to fetch transfers: %w", err)
	}

	fmt.Printf("💸 Transfers (%d)\n", len(transfers))
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.isTestnet()))
	fmt.Println()
	for _, transfer := range transfers {
		fmt.Printf("   #%-10d user %-12d %s %s  %s\n",
			transfer.TransferID,
			transfer.UserID,
			transfer.Amount.String(),
			transfer.Asset,
			formatTime(transfer.CompletedAt),
		)
	}

	fmt.Printf("\n⏱️ Loaded in %v\n", time.Since(startTime).Round(time.Millisecond*10))
	return nil
}

func printTransfer(transfer *api.Transfer) {
	fmt.Printf("   Transfer: #%d (%s)\n", transfer.TransferID, colorStatus(transfer.Status))
	fmt.Printf("   Spend ID: %s\n", transfer.SpendID)
	fmt.Printf("   Amount:   %s %s\n", transfer.Amount.String(), transfer.Asset)
	fmt.Printf("   Done at:  %s\n", formatTime(transfer.CompletedAt))
}

func getTransferConfirmation(testnet bool) bool {
	fmt.Println()
	if testnet {
		fmt.Println("⚠️ You are on testnet. Confirming moves test coins only.")
	} else {
		fmt.Println("🚨 You are on main network. Confirming sends real funds from your app balance.")
	}

	fmt.Printf("Press y to confirm or n to stop (y/n): ")

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
