package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chinmay1088/cryptopay/api"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// exportPageSize is the largest page the list methods accept
const exportPageSize = 1000

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export app data",
	Long: `Export balances, invoices, checks and transfers of your app.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format

Data exported:
  • Current balances
  • Invoices, checks and transfers (latest 1000 of each)
  • Data from your current network (mainnet or testnet)

Examples:
  cryptopay export                  # Export to CSV (default)
  cryptopay export --json           # Export to JSON
  cryptopay export --csv --json     # Export to both formats`,
	RunE: runExport,
}

var (
	csvFlag   bool
	jsonFlag  bool
	exportDir string
)

func init() {
	exportCmd.Flags().BoolVar(&csvFlag, "csv", false, "Export to CSV format")
	exportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Export to JSON format")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory to write to (default ~/.cryptopay/exports)")
}

// ExportData is the JSON export document
type ExportData struct {
	ExportDate string         `json:"export_date"`
	Network    string         `json:"network"`
	Balances   []api.Balance  `json:"balances"`
	Invoices   []api.Invoice  `json:"invoices"`
	Checks     []api.Check    `json:"checks"`
	Transfers  []api.Transfer `json:"transfers"`
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.finish(cmd.OutOrStdout())

	if !csvFlag && !jsonFlag {
		csvFlag = true
	}

	fmt.Printf("📊 Exporting %s data...\n", strings.ToUpper(env.network))
	fmt.Println()
	bar := progressbar.NewOptions(100,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/3][reset] Collecting data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	data := &ExportData{
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Network:    env.network,
	}
	if err := collectExportData(cmd.Context(), env.client, data, bar); err != nil {
		return fmt.Errorf("failed to collect data: %w", err)
	}

	_ = bar.Set(70)
	bar.Describe("[cyan][2/3][reset] Preparing export files...")
	dir, err := prepareExportDirectory(exportDir)
	if err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	_ = bar.Set(85)
	bar.Describe("[cyan][3/3][reset] Writing export files...")
	files, err := writeExportFiles(data, dir, time.Now(), csvFlag, jsonFlag)
	if err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}

	_ = bar.Set(100)
	bar.Describe("[green][✓][reset] Export completed!")
	fmt.Println()
	fmt.Println()

	fmt.Println("📁 Export completed successfully!")
	for _, file := range files {
		fmt.Printf("📍 %s\n", file)
	}
	fmt.Println()
	fmt.Println("📊 Export Summary:")
	fmt.Printf("   Network:   %s\n", strings.ToUpper(env.network))
	fmt.Printf("   Balances:  %d\n", len(data.Balances))
	fmt.Printf("   Invoices:  %d\n", len(data.Invoices))
	fmt.Printf("   Checks:    %d\n", len(data.Checks))
	fmt.Printf("   Transfers: %d\n", len(data.Transfers))
	return nil
}

func collectExportData(ctx context.Context, client *api.Client, data *ExportData, bar *progressbar.ProgressBar) error {
	var err error
	page := api.Pagination{Count: api.Ptr(exportPageSize)}

	if data.Balances, err = client.GetBalance(ctx); err != nil {
		return fmt.Errorf("balances: %w", err)
	}
	_ = bar.Add(15)

	if data.Invoices, err = client.GetInvoices(ctx, &api.GetInvoicesParams{Pagination: page}); err != nil {
		return fmt.Errorf("invoices: %w", err)
	}
	_ = bar.Add(20)

	// checks and transfers are optional app permissions
	if data.Checks, err = client.GetChecks(ctx, &api.GetChecksParams{Pagination: page}); err != nil {
		fmt.Printf("⚠️  Warning: Failed to collect checks: %v\n", err)
	}
	_ = bar.Add(15)

	if data.Transfers, err = client.GetTransfers(ctx, &api.GetTransfersParams{Pagination: page}); err != nil {
		fmt.Printf("⚠️  Warning: Failed to collect transfers: %v\n", err)
	}
	_ = bar.Add(20)
	return nil
}

func prepareExportDirectory(dir string) (string, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(homeDir, ".cryptopay", "exports")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// writeExportFiles returns the paths it wrote
func writeExportFiles(data *ExportData, dir string, now time.Time, writeCSV, writeJSON bool) ([]string, error) {
	base := filepath.Join(dir, fmt.Sprintf("cryptopay_%s_%s", data.Network, now.Format("20060102_150405")))
	var files []string

	if writeCSV {
		if err := writeCSVFile(base+".csv", data); err != nil {
			return files, fmt.Errorf("failed to write CSV export: %w", err)
		}
		files = append(files, base+".csv")
	}

	if writeJSON {
		if err := writeJSONFile(base+".json", data); err != nil {
			return files, fmt.Errorf("failed to write JSON export: %w", err)
		}
		files = append(files, base+".json")
	}
	return files, nil
}

var csvHeader = []string{"type", "id", "status", "asset", "amount", "created_at", "details"}

func writeCSVFile(filename string, data *ExportData) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range csvRows(data) {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func csvRows(data *ExportData) [][]string {
	rows := [][]string{csvHeader}

	for _, balance := range data.Balances {
		rows = append(rows, []string{
			"balance", "", "", balance.CurrencyCode, balance.Available.String(), "",
			"onhold=" + balance.Onhold.String(),
		})
	}
	for _, invoice := range data.Invoices {
		rows = append(rows, []string{
			"invoice", strconv.FormatInt(invoice.InvoiceID, 10), invoice.Status, invoice.Asset,
			invoice.Amount.String(), csvTime(invoice.CreatedAt), invoice.Description,
		})
	}
	for _, check := range data.Checks {
		rows = append(rows, []string{
			"check", strconv.FormatInt(check.CheckID, 10), check.Status, check.Asset,
			check.Amount.String(), csvTime(check.CreatedAt), check.BotCheckURL,
		})
	}
	for _, transfer := range data.Transfers {
		rows = append(rows, []string{
			"transfer", strconv.FormatInt(transfer.TransferID, 10), transfer.Status, transfer.Asset,
			transfer.Amount.String(), csvTime(transfer.CompletedAt),
			fmt.Sprintf("user=%d spend_id=%s", transfer.UserID, transfer.SpendID),
		})
	}
	return rows
}

func csvTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func writeJSONFile(filename string, data *ExportData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, raw, 0600)
}
