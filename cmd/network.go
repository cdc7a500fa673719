package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/cryptopay/account"
	"github.com/chinmay1088/cryptopay/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network [mainnet|testnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch between mainnet and testnet.

Mainnet uses @CryptoBot, testnet uses @CryptoTestnetBot. Each network has
its own API token, so log in again after switching.

Examples:
  cryptopay network            # Show current network
  cryptopay network mainnet    # Switch to mainnet
  cryptopay network testnet    # Switch to testnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	manager, err := account.NewManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		showNetwork(manager)
		return nil
	}

	if err := manager.SetNetwork(args[0]); err != nil {
		return err
	}

	fmt.Printf("🌐 Switched to %s network\n", strings.ToUpper(manager.Network()))
	fmt.Printf("   Gateway: %s\n", api.BaseURLForNetwork(manager.Network()))
	if !manager.VaultExists() {
		fmt.Println()
		fmt.Println("💡 No token stored for this network yet. Run 'cryptopay login'")
	}
	return nil
}

func showNetwork(manager *account.Manager) {
	network := manager.Network()
	if network == account.NetworkTestnet {
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Testnet"))
		fmt.Println("   Bot: @CryptoTestnetBot")
	} else {
		fmt.Printf("🌐 Current network: %s\n", color.GreenString("Mainnet"))
		fmt.Println("   Bot: @CryptoBot")
	}
	fmt.Printf("   Gateway: %s\n", api.BaseURLForNetwork(network))

	switch {
	case !manager.VaultExists():
		fmt.Printf("   Token: %s\n", color.RedString("not stored"))
	case manager.IsUnlocked():
		fmt.Printf("   Token: %s\n", color.GreenString("unlocked"))
	default:
		fmt.Printf("   Token: %s\n", color.YellowString("locked"))
	}
}
