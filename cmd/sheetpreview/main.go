// Command sheetpreview prints the first rows of a CSV or Excel file, either
// from disk or from the configured upload storage.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"insights-console-be/internal/config"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/internal/service"
	"insights-console-be/pkg/spreadsheet"
	"insights-console-be/pkg/storage"

	"github.com/spf13/cobra"
)

var (
	rowLimit   int
	fromStore  bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetpreview <file | reference>",
	Short: "Preview the first rows of a spreadsheet",
	Long: `Reads a .csv, .xlsx or .xls file and prints its header and first rows.
With --stored the argument is an upload reference such as
private/uploads/sales.xlsx, fetched from the storage configured in the
environment (STORAGE_PROVIDER, SUPABASE_URL, ...).`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runPreview,
}

func init() {
	rootCmd.Flags().IntVarP(&rowLimit, "limit", "n", spreadsheet.DefaultRowLimit, "maximum number of data rows")
	rootCmd.Flags().BoolVar(&fromStore, "stored", false, "treat the argument as an upload reference")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print rows as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	var (
		table *spreadsheet.Table
		err   error
	)
	if fromStore {
		table, err = previewStored(cmd.Context(), args[0])
	} else {
		table, err = previewLocal(args[0])
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}
	return printTable(cmd.OutOrStdout(), table)
}

func previewLocal(path string) (*spreadsheet.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return spreadsheet.Preview(filepath.Base(path), data, rowLimit)
}

func previewStored(ctx context.Context, reference string) (*spreadsheet.Table, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()

	var store storage.BlobStore
	switch cfg.Storage.Provider {
	case "supabase":
		store = storage.NewSupabaseStore(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket)
	default:
		store = storage.NewLocalStore(cfg.Storage.LocalDir)
	}

	res, err := service.NewPreviewService(store, rowLimit, logger.NewNopLogger()).Fetch(ctx, reference)
	if err != nil {
		return nil, err
	}
	return &spreadsheet.Table{Columns: res.Columns, Rows: res.Rows}, nil
}

func printTable(w io.Writer, table *spreadsheet.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			cells[i] = row[col]
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d row(s)\n", len(table.Rows))
	return nil
}
