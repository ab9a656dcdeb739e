package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSubmitPrayerRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name: "named request",
			body: map[string]interface{}{
				"name":    "Ama",
				"request": "Please pray for my exams.",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "anonymous public request",
			body: map[string]interface{}{
				"request":  "Pray for my family.",
				"isPublic": true,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing request text",
			body:           map[string]interface{}{"name": "Ama"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusCreated {
				mock.ExpectExec("INSERT INTO \"prayer_request\"").WillReturnResult(sqlmock.NewResult(1, 1))
			}

			jsonData, _ := json.Marshal(tt.body)

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("POST", "/community/prayer-requests", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			SubmitPrayerRequest(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSubmitTestimony(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name: "valid testimony",
			body: map[string]interface{}{
				"name":      "Kwame",
				"country":   "Ghana",
				"testimony": "God healed my mother!",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing testimony text",
			body:           map[string]interface{}{"name": "Kwame"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusCreated {
				mock.ExpectExec("INSERT INTO \"testimony\"").WillReturnResult(sqlmock.NewResult(1, 1))
			}

			jsonData, _ := json.Marshal(tt.body)

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("POST", "/community/testimonies", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			SubmitTestimony(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestApproveTestimony(t *testing.T) {
	tests := []struct {
		name           string
		testimonyID    string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "approve pending testimony",
			testimonyID:    "1",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "testimony not found",
			testimonyID:    "99",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid ID",
			testimonyID:    "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.testimonyID != "abc" {
				mock.ExpectExec("UPDATE \"testimony\"").WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Request = httptest.NewRequest("POST", "/manage/testimonies/"+tt.testimonyID+"/approve", nil)
			c.Params = append(c.Params, gin.Param{Key: "id", Value: tt.testimonyID})

			ApproveTestimony(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
