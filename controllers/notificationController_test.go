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

func TestCreateScheduledNotification(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		devotionExists bool
		expectedStatus int
	}{
		{
			name: "daily devotion notification",
			body: map[string]interface{}{
				"notificationType": "daily_devotion",
				"audience":         "daily_devotion",
				"scheduledDate":    "2026-09-01T06:00:00Z",
				"sendEmail":        true,
				"sendSms":          true,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "custom notification with message",
			body: map[string]interface{}{
				"title":            "Prayer Conference Reminder",
				"message":          "Join us tonight at 7pm for the prayer conference.",
				"notificationType": "custom",
				"audience":         "special_programs",
				"scheduledDate":    "2026-09-01T17:00:00Z",
				"sendWhatsapp":     true,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "custom notification without message",
			body: map[string]interface{}{
				"notificationType": "custom",
				"audience":         "special_programs",
				"scheduledDate":    "2026-09-01T17:00:00Z",
				"sendEmail":        true,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no channels enabled",
			body: map[string]interface{}{
				"notificationType": "daily_devotion",
				"audience":         "daily_devotion",
				"scheduledDate":    "2026-09-01T06:00:00Z",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid notification type",
			body: map[string]interface{}{
				"notificationType": "smoke_signal",
				"audience":         "daily_devotion",
				"scheduledDate":    "2026-09-01T06:00:00Z",
				"sendEmail":        true,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid scheduled date",
			body: map[string]interface{}{
				"notificationType": "daily_devotion",
				"audience":         "daily_devotion",
				"scheduledDate":    "tomorrow morning",
				"sendEmail":        true,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "pinned devotion must exist",
			body: map[string]interface{}{
				"notificationType": "daily_devotion",
				"audience":         "daily_devotion",
				"devotionId":       42,
				"scheduledDate":    "2026-09-01T06:00:00Z",
				"sendEmail":        true,
			},
			devotionExists: false,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if _, pinned := tt.body["devotionId"]; pinned {
				count := 0
				if tt.devotionExists {
					count = 1
				}
				mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
			} else if tt.expectedStatus == http.StatusCreated {
				mock.ExpectExec("INSERT INTO \"scheduled_notification\"").WillReturnResult(sqlmock.NewResult(1, 1))
			}

			jsonData, _ := json.Marshal(tt.body)

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Request = httptest.NewRequest("POST", "/manage/notifications", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateScheduledNotification(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNotificationStatusTransitions(t *testing.T) {
	tests := []struct {
		name           string
		handler        func(*gin.Context)
		notificationID string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "pause a scheduled notification",
			handler:        PauseScheduledNotification,
			notificationID: "1",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "pause fails when not scheduled",
			handler:        PauseScheduledNotification,
			notificationID: "1",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "resume a paused notification",
			handler:        ResumeScheduledNotification,
			notificationID: "1",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "resume fails on a sent notification",
			handler:        ResumeScheduledNotification,
			notificationID: "3",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid ID",
			handler:        PauseScheduledNotification,
			notificationID: "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.notificationID != "abc" {
				mock.ExpectExec("UPDATE \"scheduled_notification\"").WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Request = httptest.NewRequest("POST", "/manage/notifications/"+tt.notificationID+"/pause", nil)
			c.Params = append(c.Params, gin.Param{Key: "id", Value: tt.notificationID})

			tt.handler(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCancelScheduledNotification(t *testing.T) {
	tests := []struct {
		name           string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "cancel a scheduled notification",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sent notifications cannot be cancelled",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectExec("UPDATE \"scheduled_notification\"").WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Request = httptest.NewRequest("POST", "/manage/notifications/1/cancel", nil)
			c.Params = append(c.Params, gin.Param{Key: "id", Value: "1"})

			CancelScheduledNotification(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
