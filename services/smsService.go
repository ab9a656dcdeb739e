package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// SMSService sends text messages through the FastR SMS gateway.
type SMSService struct {
	apiKey     string
	baseURL    string
	senderID   string
	httpClient *http.Client
}

var smsService *SMSService

func InitSMSService() {
	apiKey := os.Getenv("FASTR_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: FASTR_API_KEY not set. SMS service will not be available.")
		return
	}

	baseURL := os.Getenv("FASTR_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://prompt.pywe.org/api/client"
	}

	senderID := os.Getenv("FASTR_SENDER_ID")
	if senderID == "" {
		senderID = "COME CENTRE"
	}

	smsService = &SMSService{
		apiKey:   apiKey,
		baseURL:  baseURL,
		senderID: senderID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	log.Println("SMS service initialized successfully with FastR")
}

func GetSMSService() *SMSService {
	return smsService
}

type smsSendRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id"`
}

type smsSendResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		SMSID string `json:"sms_id"`
	} `json:"data"`
}

// SendSMS sends a message to a phone number in international format.
// Returns the gateway's SMS ID on success.
func (s *SMSService) SendSMS(phone string, message string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("SMS service not initialized")
	}

	body, err := json.Marshal(smsSendRequest{
		To:       NormalizePhone(phone),
		Message:  message,
		SenderID: s.senderID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode SMS request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/sms/send", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build SMS request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("SMS sending failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read SMS response: %v", err)
	}

	var parsed smsSendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("SMS sending failed: HTTP %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusCreated {
		msg := parsed.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return "", fmt.Errorf("SMS sending failed: %s", msg)
	}

	if parsed.Status != "success" {
		return "", fmt.Errorf("SMS API error: %s", parsed.Message)
	}

	log.Printf("SMS sent successfully. SMS ID: %s", parsed.Data.SMSID)
	return parsed.Data.SMSID, nil
}

// NormalizePhone strips separators and ensures a leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	for _, sep := range []string{" ", "-", "(", ")"} {
		phone = strings.ReplaceAll(phone, sep, "")
	}
	if phone == "" {
		return phone
	}
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + strings.TrimLeft(phone, " +0")
	}
	return phone
}
