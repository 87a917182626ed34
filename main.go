package main

import (
	"os"

	"github.com/spf13/cobra"
)

var listenAddr string
var cacheDbPath string
var priceSheetUrl string

var rootCmd = &cobra.Command{
	Use:   "pricing-service",
	Short: "Serve roller-blind price quotes from the published price workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return RunApp(listenAddr, cacheDbPath, priceSheetUrl)
	},
}

func init() {
	rootCmd.Flags().StringVar(&listenAddr, "listen", envOrDefault("LISTEN_ADDR", DefaultListenAddr), "address to listen on")
	rootCmd.Flags().StringVar(&cacheDbPath, "cache-db", os.Getenv("CACHE_DB_FILEPATH"), "path to the workbook cache database")
	rootCmd.Flags().StringVar(&priceSheetUrl, "price-url", os.Getenv("PRICE_SHEET_URL"), "public Google Sheets URL of the price list")
}

func envOrDefault(name string, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func main() {
	os.Exit(HandleExitError(os.Stderr, rootCmd.Execute()))
}
