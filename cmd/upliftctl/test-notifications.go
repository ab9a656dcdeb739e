package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/services"
)

var (
	testEmail    string
	testPhone    string
	testWhatsApp string
	testMessage  string
)

// testNotificationsCmd sends a test message over each configured channel so
// credentials can be checked without touching real subscribers.
var testNotificationsCmd = &cobra.Command{
	Use:   "test-notifications",
	Short: "Send a test message over the configured channels",
	Long: `Send a test message to the given email address and/or phone numbers.

Example:
  upliftctl test-notifications --email you@example.com
  upliftctl test-notifications --sms +233241234567 --whatsapp +233241234567`,
	Run: func(cmd *cobra.Command, args []string) {
		if testEmail == "" && testPhone == "" && testWhatsApp == "" {
			fmt.Println("Nothing to do: pass --email, --sms or --whatsapp")
			os.Exit(1)
		}

		// Channel smoke tests only need credentials, not the database.
		initializers.LoadEnv()

		message := testMessage
		if message == "" {
			message = "This is a test message from Uplift Your Morning. If you received this, the channel is configured correctly."
		}

		failed := false

		if testEmail != "" {
			services.InitEmailService()
			err := services.GetEmailService().SendDevotionEmail(testEmail, "Test - Uplift Your Morning", message, "")
			reportTestResult("email", testEmail, err)
			failed = failed || err != nil
		}

		if testPhone != "" {
			services.InitSMSService()
			_, err := services.GetSMSService().SendSMS(testPhone, message)
			reportTestResult("SMS", testPhone, err)
			failed = failed || err != nil
		}

		if testWhatsApp != "" {
			services.InitWhatsAppService()
			_, err := services.GetWhatsAppService().SendWhatsApp(testWhatsApp, message)
			reportTestResult("WhatsApp", testWhatsApp, err)
			failed = failed || err != nil
		}

		if failed {
			os.Exit(1)
		}
	},
}

func reportTestResult(channel string, target string, err error) {
	if err != nil {
		fmt.Printf("%s to %s failed: %v\n", channel, target, err)
		return
	}
	fmt.Printf("%s to %s sent\n", channel, target)
}

func init() {
	testNotificationsCmd.Flags().StringVar(&testEmail, "email", "", "email address to send a test email to")
	testNotificationsCmd.Flags().StringVar(&testPhone, "sms", "", "phone number to send a test SMS to")
	testNotificationsCmd.Flags().StringVar(&testWhatsApp, "whatsapp", "", "phone number to send a test WhatsApp message to")
	testNotificationsCmd.Flags().StringVar(&testMessage, "message", "", "override the default test message")
	rootCmd.AddCommand(testNotificationsCmd)
}
