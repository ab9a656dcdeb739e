package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// PaystackService wraps the Paystack transaction API used for donations.
type PaystackService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

var paystackService *PaystackService

func InitPaystackService() {
	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")

	if secretKey == "" {
		log.Println("WARNING: PAYSTACK_SECRET_KEY not set. Donation checkout will not be available.")
		return
	}

	baseURL := os.Getenv("PAYSTACK_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.paystack.co"
	}

	paystackService = &PaystackService{
		secretKey: secretKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	log.Println("Paystack service initialized successfully")
}

func GetPaystackService() *PaystackService {
	return paystackService
}

type paystackInitRequest struct {
	Email       string                 `json:"email"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	CallbackURL string                 `json:"callback_url"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PaystackInitResult is the subset of the initialize response we act on.
type PaystackInitResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
	Raw              string `json:"-"`
}

// PaystackVerifyResult is the subset of the verify response we act on.
type PaystackVerifyResult struct {
	Status string `json:"status"`
	Amount int64  `json:"amount"`
	Raw    string `json:"-"`
}

// InitializeTransaction starts a Paystack checkout. Amounts are in pesewas.
func (s *PaystackService) InitializeTransaction(email string, amountPesewas int64, callbackURL string, donorName string) (*PaystackInitResult, error) {
	if s == nil {
		return nil, fmt.Errorf("paystack service not initialized")
	}

	reqBody := paystackInitRequest{
		Email:       email,
		Amount:      amountPesewas,
		Currency:    "GHS",
		CallbackURL: callbackURL,
		Metadata: map[string]interface{}{
			"custom_fields": []map[string]string{
				{
					"display_name":  "Donor Name",
					"variable_name": "donor_name",
					"value":         donorName,
				},
			},
		},
	}

	envelope, err := s.post("/transaction/initialize", reqBody)
	if err != nil {
		return nil, err
	}

	var result PaystackInitResult
	if err := json.Unmarshal(envelope.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response: %v", err)
	}
	if result.AuthorizationURL == "" || result.Reference == "" {
		return nil, fmt.Errorf("paystack initialize returned an incomplete response")
	}
	result.Raw = string(envelope.Data)

	return &result, nil
}

// VerifyTransaction checks the final status of a transaction reference.
func (s *PaystackService) VerifyTransaction(reference string) (*PaystackVerifyResult, error) {
	if s == nil {
		return nil, fmt.Errorf("paystack service not initialized")
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build paystack request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	envelope, err := s.do(req)
	if err != nil {
		return nil, err
	}

	var result PaystackVerifyResult
	if err := json.Unmarshal(envelope.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response: %v", err)
	}
	result.Raw = string(envelope.Data)

	return &result, nil
}

func (s *PaystackService) post(path string, body interface{}) (*paystackEnvelope, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode paystack request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build paystack request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	return s.do(req)
}

func (s *PaystackService) do(req *http.Request) (*paystackEnvelope, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to reach payment service: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read paystack response: %v", err)
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("paystack returned an unexpected response: HTTP %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !envelope.Status {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("paystack API error: %s", msg)
	}

	return &envelope, nil
}
