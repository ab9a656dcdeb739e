package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/UpliftAfrika/services"
	"github.com/stretchr/testify/assert"
)

var donationColumns = []string{
	"donation_id", "name", "email", "amount_ghs", "paystack_reference",
	"status", "note", "raw_response", "datetime_create", "datetime_update",
}

func donationRow(status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(donationColumns).AddRow(
		1, "Kwame Asante", "kwame@example.com", 50.0, "don-ref-1",
		status, "", nil, now, now,
	)
}

// startPaystackStub points the Paystack client at a local test server and
// reports how many verify calls it received.
func startPaystackStub(t *testing.T, handler http.HandlerFunc) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("PAYSTACK_SECRET_KEY", "test-secret")
	t.Setenv("PAYSTACK_BASE_URL", server.URL)
	services.InitPaystackService()
}

func TestVerifyDonation(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		donationStatus  string
		donationExists  bool
		paystackStatus  string
		expectVerify    bool
		expectUpdate    bool
		expectedStatus  int
		expectedBody    string
	}{
		{
			name:           "successful charge marks the donation success",
			query:          "reference=don-ref-1",
			donationExists: true,
			donationStatus: "pending",
			paystackStatus: "success",
			expectVerify:   true,
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
		{
			name:           "reversed charge marks the donation failed",
			query:          "reference=don-ref-1",
			donationExists: true,
			donationStatus: "pending",
			paystackStatus: "reversed",
			expectVerify:   true,
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   "failed",
		},
		{
			name:           "abandoned charge stays pending but keeps the gateway response",
			query:          "reference=don-ref-1",
			donationExists: true,
			donationStatus: "pending",
			paystackStatus: "abandoned",
			expectVerify:   true,
			expectUpdate:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   "pending",
		},
		{
			name:           "already successful donation short-circuits",
			query:          "trxref=don-ref-1",
			donationExists: true,
			donationStatus: "success",
			expectVerify:   false,
			expectedStatus: http.StatusOK,
			expectedBody:   "Thank you",
		},
		{
			name:           "unknown reference verifies without updating",
			query:          "reference=unknown-ref",
			donationExists: false,
			paystackStatus: "success",
			expectVerify:   true,
			expectUpdate:   false,
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
		{
			name:           "missing reference",
			query:          "",
			expectVerify:   false,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing transaction reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			verifyCalls := 0
			startPaystackStub(t, func(w http.ResponseWriter, r *http.Request) {
				verifyCalls++
				assert.Equal(t, "Bearer test-secret", r.Header.Get("Authorization"))
				json.NewEncoder(w).Encode(map[string]interface{}{
					"status":  true,
					"message": "Verification successful",
					"data":    map[string]interface{}{"status": tt.paystackStatus, "amount": 5000},
				})
			})

			if tt.query != "" {
				if tt.donationExists {
					mock.ExpectQuery("SELECT").WillReturnRows(donationRow(tt.donationStatus))
				} else {
					mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(donationColumns))
				}
			}
			if tt.expectUpdate {
				mock.ExpectExec("UPDATE \"donation\"").WillReturnResult(sqlmock.NewResult(0, 1))
			}

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("GET", "/donations/verify?"+tt.query, nil)

			VerifyDonation(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			if tt.expectVerify {
				assert.Equal(t, 1, verifyCalls)
			} else {
				assert.Zero(t, verifyCalls)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStartDonationCheckout(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectInsert   bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid checkout",
			body: map[string]interface{}{
				"name":      "Kwame Asante",
				"email":     "kwame@example.com",
				"amountGhs": 50.0,
			},
			expectInsert:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   "authorizationUrl",
		},
		{
			name: "zero amount rejected by binding",
			body: map[string]interface{}{
				"name":      "Kwame Asante",
				"email":     "kwame@example.com",
				"amountGhs": 0,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			startPaystackStub(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transaction/initialize", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"status":  true,
					"message": "Authorization URL created",
					"data": map[string]string{
						"authorization_url": "https://checkout.paystack.com/abc123",
						"access_code":       "ac_abc123",
						"reference":         "don-ref-1",
					},
				})
			})

			if tt.expectInsert {
				mock.ExpectExec("INSERT INTO \"donation\"").WillReturnResult(sqlmock.NewResult(1, 1))
			}

			jsonData, _ := json.Marshal(tt.body)

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("POST", "/donations/checkout", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			StartDonationCheckout(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
