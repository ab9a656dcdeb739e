package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/UpliftAfrika/initializers"
)

var rootCmd = &cobra.Command{
	Use:   "upliftctl",
	Short: "Uplift Your Morning operations CLI",
	Long: `Operational commands for the Uplift Your Morning backend:
daily devotion dispatch, scheduled notification processing, channel
smoke tests and database migrations.`,
}

func connectServices() {
	initializers.LoadEnv()
	initializers.ConnectDB()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
