package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// WhatsAppService sends WhatsApp messages through the Twilio API.
type WhatsAppService struct {
	client     *twilio.RestClient
	fromNumber string
}

var whatsappService *WhatsAppService

func InitWhatsAppService() {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	if accountSID == "" || authToken == "" {
		log.Println("WARNING: Twilio credentials not set. WhatsApp service will not be available.")
		return
	}

	fromNumber := os.Getenv("TWILIO_WHATSAPP_FROM")
	if fromNumber == "" {
		fromNumber = "whatsapp:+14155238886"
	}

	whatsappService = &WhatsAppService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		fromNumber: fromNumber,
	}

	log.Println("WhatsApp service initialized successfully with Twilio")
}

func GetWhatsAppService() *WhatsAppService {
	return whatsappService
}

// SendWhatsApp sends a message to a phone number in international format.
// Returns the Twilio message SID on success.
func (s *WhatsAppService) SendWhatsApp(phone string, message string) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("WhatsApp service not initialized")
	}

	to := NormalizePhone(phone)
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("WhatsApp sending failed: %v", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}

	log.Printf("WhatsApp message sent successfully. Message SID: %s", sid)
	return sid, nil
}
