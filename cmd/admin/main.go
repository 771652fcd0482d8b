// Command admin is an operator CLI for tasks that don't belong behind the
// merchant-facing HTTP API: business rule management, manual payment
// expiry, and audit chain verification.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spg-admin",
	Short: "Secure Payment Gateway operator CLI",
	Long:  "spg-admin manages business rules, forces payment expiry, and verifies audit chain integrity against the gateway's PostgreSQL store.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml, env SPG_*)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
