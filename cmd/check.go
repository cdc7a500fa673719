package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Create or inspect a check",
}

var checkCreateCmd = &cobra.Command{
	Use:   "create <asset> <amount>",
	Short: "Create a check anyone (or one user) can activate",
	Long: `Create a check paid from your app balance.

Examples:
  cryptopay check create TON 1
  cryptopay check create USDT 5 --pin-user-id 123456789
  cryptopay check create USDT 5 --pin-username durov`,
	Args: cobra.ExactArgs(2),
	RunE: runCheckCreate,
}

var checkGetCmd = &cobra.Command{
	Use:   "get <check-id>",
	Short: "Show one check",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckGet,
}

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List checks",
	Args:  cobra.NoArgs,
	RunE:  runChecks,
}

func init() {
	checkCreateCmd.Flags().Int64("pin-user-id", 0, "Only this Telegram user can activate the check")
	checkCreateCmd.Flags().String("pin-username", "", "Only this Telegram username can activate the check")

	checksCmd.Flags().StringSlice("status", nil, "Filter by status (active, activated)")
	checksCmd.Flags().String("asset", "", "Filter by asset")
	checksCmd.Flags().Int("offset", 0, "Skip this many checks")
	checksCmd.Flags().Int("count", 0, "Return at most this many checks (1-1000)")

	checkCmd.AddCommand(checkCreateCmd)
	checkCmd.AddCommand(checkGetCmd)
}

func runCheckCreate(cmd *cobra.Command, args []string) error {
	asset, err := normalizeAsset(args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	params := api.CreateCheckParams{Asset: asset, Amount: amount}
	if userID, _ := cmd.Flags().GetInt64("pin-user-id"); userID > 0 {
		params.PinToUserID = api.Ptr(userID)
	}
	username, _ := cmd.Flags().GetString("pin-username")
	params.PinToUsername = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if params.PinToUserID != nil && params.PinToUsername != "" {
		return fmt.Errorf("use either --pin-user-id or --pin-username, not both")
	}

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	check, err := env.client.CreateCheck(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to create check: %w", err)
	}

	fmt.Println("✅ Check created!")
	fmt.Println()
	printCheck(check)
	return nil
}

func runCheckGet(cmd *cobra.Command, args []string) error {
	id, err := parseID("check", args[0])
	if err != nil {
		return err
	}

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	check, err := env.client.GetCheck(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch check: %w", err)
	}
	if check == nil {
		return fmt.Errorf("check %d not found", id)
	}
	printCheck(check)
	return nil
}

func runChecks(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	status, _ := cmd.Flags().GetStringSlice("status")
	asset, _ := cmd.Flags().GetString("asset")
	offset, _ := cmd.Flags().GetInt("offset")
	count, _ := cmd.Flags().GetInt("count")

	checks, err := env.client.GetChecks(cmd.Context(), &api.GetChecksParams{
		Pagination: pagination(offset, count),
		Status:     status,
		Asset:      optionalString(strings.ToUpper(asset)),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch checks: %w", err)
	}

	fmt.Printf("🎟️  Checks (%d)\n", len(checks))
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.isTestnet()))
	fmt.Println()
	for _, check := range checks {
		fmt.Printf("   #%-10d %-10s %s %s  %s\n",
			check.CheckID,
			colorStatus(check.Status),
			check.Amount.String(),
			check.Asset,
			formatTime(check.CreatedAt),
		)
	}
	return nil
}

func printCheck(check *api.Check) {
	fmt.Printf("🎟️  Check #%d (%s)\n", check.CheckID, colorStatus(check.Status))
	fmt.Printf("   Amount:    %s %s\n", check.Amount.String(), check.Asset)
	fmt.Printf("   Link:      %s\n", check.BotCheckURL)
	fmt.Printf("   Created:   %s\n", formatTime(check.CreatedAt))
	if check.ActivatedAt != nil {
		fmt.Printf("   Activated: %s\n", formatTime(check.ActivatedAt))
	}
}
