package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var userProfileColumns = []string{
	"user_profile_id", "username", "password", "email", "first_name",
	"last_name", "admin", "created_by", "updated_by",
	"datetime_create", "datetime_update",
}

func TestUserLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		userExists     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid credentials",
			body: map[string]interface{}{
				"username": "testuser",
				"password": "password123",
			},
			userExists:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   "token",
		},
		{
			name: "wrong password",
			body: map[string]interface{}{
				"username": "testuser",
				"password": "not-the-password",
			},
			userExists:     true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid password",
		},
		{
			name: "unknown user",
			body: map[string]interface{}{
				"username": "nobody",
				"password": "password123",
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid password",
		},
		{
			name:           "missing fields rejected by binding",
			body:           map[string]interface{}{"username": "testuser"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SECRET", "test-secret-key")

			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus != http.StatusBadRequest {
				rows := sqlmock.NewRows(userProfileColumns)
				if tt.userExists {
					now := time.Now()
					user := MockUserWithPassword()
					rows.AddRow(
						user.User_Profile_ID, user.Username, user.Password,
						user.Email, user.First_Name, user.Last_Name,
						user.Admin, user.Created_By, user.Updated_By, now, now,
					)
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}

			jsonData, _ := json.Marshal(tt.body)

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			UserLogin(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
