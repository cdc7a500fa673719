package cmd

import (
	"fmt"

	"github.com/chinmay1088/cryptopay/account"
	"github.com/spf13/cobra"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the stored token for a session",
	Long: `Unlock the API token stored for the current network.
The token stays available for 30 minutes or until you run 'cryptopay lock'.

Example:
  cryptopay unlock`,
	RunE: runUnlock,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := account.NewManager()
		if err != nil {
			return err
		}
		manager.Lock()
		fmt.Println("🔒 Session locked")
		return nil
	},
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager, err := account.NewManager()
	if err != nil {
		return err
	}

	if !manager.VaultExists() {
		return account.ErrNoVault
	}

	if manager.IsUnlocked() {
		fmt.Println("✅ Token is already unlocked")
		return nil
	}

	password, err := readSecret("Enter your vault password: ")
	if err != nil {
		return err
	}

	if err := manager.Unlock(password); err != nil {
		return fmt.Errorf("failed to unlock: %w", err)
	}

	fmt.Println("✅ Unlocked for 30 minutes")
	fmt.Println("💡 Use 'cryptopay balance' to check your balances")
	return nil
}
