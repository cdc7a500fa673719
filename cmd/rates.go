package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/chinmay1088/cryptopay/currency"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates [source]",
	Short: "Show exchange rates",
	Long: `Show the exchange rates known to the gateway.

Examples:
  cryptopay rates                  # Every pair
  cryptopay rates TON              # Rates from TON
  cryptopay rates TON --target USD # A single pair`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRates,
}

var assetsCmd = &cobra.Command{
	Use:     "assets",
	Aliases: []string{"currencies"},
	Short:   "List supported currencies",
	Args:    cobra.NoArgs,
	RunE:    runAssets,
}

func init() {
	ratesCmd.Flags().String("target", "", "Target currency, e.g. USD")
}

func runRates(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	target, _ := cmd.Flags().GetString("target")
	target = strings.ToUpper(strings.TrimSpace(target))

	var source string
	if len(args) == 1 {
		source = strings.ToUpper(strings.TrimSpace(args[0]))
	}

	if source != "" && target != "" {
		rate, ok, err := env.client.GetExchangeRate(cmd.Context(), source, target)
		if err != nil {
			return fmt.Errorf("failed to fetch rate: %w", err)
		}
		if !ok {
			return fmt.Errorf("no rate for %s/%s", source, target)
		}
		fmt.Printf("💱 1 %s = %s %s\n", rate.Source, rate.Rate.String(), rate.Target)
		return nil
	}

	var rates []api.ExchangeRate
	if source != "" {
		rates, err = env.client.GetExchangeRates(cmd.Context(), source)
	} else {
		rates, err = env.client.GetAllExchangeRates(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tTARGET\tRATE")
	for _, rate := range rates {
		if target != "" && !strings.EqualFold(rate.Target, target) {
			continue
		}
		value := rate.Rate.String()
		if !rate.IsValid {
			value = color.RedString("invalid")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", rate.Source, rate.Target, value)
	}
	return w.Flush()
}

func runAssets(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	assets, err := env.client.GetAssets(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch assets: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tKIND\tDECIMALS")
	for _, asset := range assets {
		kind := currency.Classify(asset.Code)
		if kind == currency.KindUnknown && asset.IsFiat {
			kind = currency.KindFiat
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", asset.Code, asset.Name, kind, asset.Decimals)
	}
	return w.Flush()
}
