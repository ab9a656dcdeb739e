package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UpliftAfrika/services"
)

var (
	sendDryRun bool
	sendForce  bool
)

// sendDailyDevotionsCmd delivers today's devotion to every opted-in
// subscriber. Meant to run from cron each morning.
var sendDailyDevotionsCmd = &cobra.Command{
	Use:   "send-daily-devotions",
	Short: "Send today's devotion to all subscribers",
	Long: `Send today's devotion to every active subscriber over email, SMS
and WhatsApp.

With --dry-run the recipient lists are resolved and counted but nothing
is sent. With --force a fallback message goes out even when no devotion
is published for today.

Example:
  upliftctl send-daily-devotions
  upliftctl send-daily-devotions --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		connectServices()
		services.InitEmailService()
		services.InitSMSService()
		services.InitWhatsAppService()

		result, err := services.SendDailyDevotions(sendDryRun, sendForce)
		if err != nil {
			fmt.Println("Dispatch failed:", err)
			os.Exit(1)
		}

		if sendDryRun {
			fmt.Println("Dry run - nothing was sent")
		}
		fmt.Printf("Email:    %d sent, %d failed\n", result.EmailSent, result.EmailFailed)
		fmt.Printf("SMS:      %d sent, %d failed\n", result.SMSSent, result.SMSFailed)
		fmt.Printf("WhatsApp: %d sent, %d failed\n", result.WhatsAppSent, result.WhatsAppFailed)
	},
}

func init() {
	sendDailyDevotionsCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "resolve recipients without sending")
	sendDailyDevotionsCmd.Flags().BoolVar(&sendForce, "force", false, "send a fallback message when no devotion is published")
	rootCmd.AddCommand(sendDailyDevotionsCmd)
}
