package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UpliftAfrika/services"
)

// processScheduledCmd dispatches every due scheduled notification. Meant to
// run from cron every few minutes.
var processScheduledCmd = &cobra.Command{
	Use:   "process-scheduled",
	Short: "Dispatch due scheduled notifications",
	Long: `Dispatch every scheduled notification whose scheduled time has
passed. Paused, sent and cancelled notifications are left alone.

Example:
  upliftctl process-scheduled`,
	Run: func(cmd *cobra.Command, args []string) {
		connectServices()
		services.InitEmailService()
		services.InitSMSService()
		services.InitWhatsAppService()

		processed, err := services.ProcessScheduledNotifications()
		if err != nil {
			fmt.Println("Processing failed:", err)
			os.Exit(1)
		}

		fmt.Printf("Processed %d notification(s)\n", processed)
	},
}

func init() {
	rootCmd.AddCommand(processScheduledCmd)
}
