package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navneetshukla17/primetrade-ai-analysis/cmd"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/reports"
)

var (
	configPath string
	outDir     string
	format     string
	fraction   float64
)

var rootCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Render sentiment-vs-performance report tables",
	Long: "Renders the named aggregate table (or all tables when no name is given)\n" +
		"over the full joined dataset. Available reports: " + strings.Join(reports.Names(), ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config yaml")
	rootCmd.Flags().StringVar(&outDir, "out", "", "write files to this directory instead of stdout")
	rootCmd.Flags().StringVar(&format, "format", "csv", "output format: csv or md")
	rootCmd.Flags().Float64Var(&fraction, "fraction", 0.10, "trader segment fraction for trader_segments")
}

func run(_ *cobra.Command, args []string) error {
	if format != "csv" && format != "md" {
		return fmt.Errorf("invalid format %q, want csv or md", format)
	}

	apiHandler, err := cmd.InitializeDependencies(configPath)
	if err != nil {
		return err
	}

	ds, err := apiHandler.Sessions.Dataset()
	if err != nil {
		return err
	}

	opts := reports.Options{
		MinCoinTrades:   apiHandler.Config.MinCoinTrades,
		SegmentFraction: fraction,
	}

	var tables []reports.Table
	if len(args) == 1 {
		table, err := reports.Build(args[0], ds.Trades, opts)
		if err != nil {
			return err
		}
		tables = []reports.Table{table}
	} else {
		tables, err = reports.BuildAll(ds.Trades, opts)
		if err != nil {
			return err
		}
	}

	for _, table := range tables {
		body, err := render(table)
		if err != nil {
			return err
		}
		if outDir == "" {
			fmt.Println(body)
			continue
		}
		path := filepath.Join(outDir, table.Name+"."+format)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Println("wrote", path)
	}
	return nil
}

func render(table reports.Table) (string, error) {
	if format == "md" {
		return reports.RenderMarkdown(table), nil
	}
	return reports.RenderCSV(table)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
