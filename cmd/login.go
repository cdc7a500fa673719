package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/chinmay1088/cryptopay/account"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your API token",
	Long: `Store a Crypto Pay API token in an encrypted vault.

This command will:
  - Ask for the token issued by @CryptoBot (or @CryptoTestnetBot)
  - Encrypt it with a password of your choice
  - Unlock it for the next 30 minutes

Tokens are kept per network, so run it once on mainnet and once on testnet
if you use both.`,
	RunE: runLogin,
}

var forceLogin bool

func init() {
	loginCmd.Flags().BoolVarP(&forceLogin, "force", "f", false, "Replace an existing token")
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager, err := account.NewManager()
	if err != nil {
		return err
	}

	if manager.VaultExists() && !forceLogin {
		return fmt.Errorf("a token is already stored for %s. Use --force to replace it", manager.Network())
	}

	fmt.Printf("🔑 Storing API token for %s\n", strings.ToUpper(manager.Network()))
	fmt.Println()

	token, err := readSecret("Enter your API token: ")
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}

	password, err := readSecret("Enter a password for the vault: ")
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	confirm, err := readSecret("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := manager.SaveToken(token, password); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Println("✅ Token stored and unlocked!")
	fmt.Println()
	fmt.Println("🔑 Next steps:")
	fmt.Println("   - Run 'cryptopay me' to check the token")
	fmt.Println("   - Run 'cryptopay balance' to see your app balance")
	return nil
}

func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(secret), nil
}
