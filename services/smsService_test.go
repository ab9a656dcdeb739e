package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+233241234567", "+233241234567"},
		{"233 24 123 4567", "+233241234567"},
		{"+233 (24) 123-4567", "+233241234567"},
		{"  233241234567  ", "+233241234567"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestSendSMS(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		response   map[string]interface{}
		wantID     string
		wantErr    string
	}{
		{
			name:       "successful send",
			statusCode: http.StatusCreated,
			response: map[string]interface{}{
				"status":  "success",
				"message": "queued",
				"data":    map[string]string{"sms_id": "sms-123"},
			},
			wantID: "sms-123",
		},
		{
			name:       "gateway rejects request",
			statusCode: http.StatusBadRequest,
			response: map[string]interface{}{
				"status":  "error",
				"message": "invalid recipient",
			},
			wantErr: "invalid recipient",
		},
		{
			name:       "created but not successful",
			statusCode: http.StatusCreated,
			response: map[string]interface{}{
				"status":  "error",
				"message": "insufficient credits",
			},
			wantErr: "insufficient credits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/sms/send", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				var body smsSendRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "+233241234567", body.To)

				w.WriteHeader(tt.statusCode)
				json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			service := &SMSService{
				apiKey:     "test-key",
				baseURL:    server.URL,
				senderID:   "COME CENTRE",
				httpClient: server.Client(),
			}

			smsID, err := service.SendSMS("233 24 123 4567", "test message")

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, smsID)
			}
		})
	}
}

func TestSendSMSNotInitialized(t *testing.T) {
	var service *SMSService

	_, err := service.SendSMS("+233241234567", "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}
