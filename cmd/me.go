package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the app behind the API token",
	Long: `Show basic information about the app the API token belongs to.
Useful to check that a token works.

Example:
  cryptopay me`,
	Args: cobra.NoArgs,
	RunE: runMe,
}

func runMe(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	app, err := env.client.GetMe(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch app info: %w", err)
	}

	fmt.Println("🤖 App")
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.isTestnet()))
	fmt.Println()
	fmt.Printf("   ID:   %d\n", app.AppID)
	fmt.Printf("   Name: %s\n", app.Name)
	fmt.Printf("   Bot:  @%s\n", app.PaymentProcessingBotUsername)
	return nil
}
