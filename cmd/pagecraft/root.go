package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagecraft",
	Short: "Generates FAQ, product, and comparison pages from product records",
	Long: `pagecraft turns structured product records into derived content pages:
a categorized question bank, an FAQ, a narrative product page per product,
and a head-to-head comparison. Run "generate" to produce the pages and
"serve" to expose them over HTTP.`,
	SilenceUsage: true,
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}
