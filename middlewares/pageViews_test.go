package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTrackPageViews(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		alreadySeen  bool
		expectLookup bool
		expectInsert bool
	}{
		{
			name:         "public GET is recorded",
			method:       "GET",
			path:         "/devotions/walking-in-faith/",
			expectLookup: true,
			expectInsert: true,
		},
		{
			name:         "repeat hit inside window is not recorded",
			method:       "GET",
			path:         "/devotions/walking-in-faith/",
			alreadySeen:  true,
			expectLookup: true,
		},
		{
			name:   "POST is ignored",
			method: "POST",
			path:   "/community/prayer-requests",
		},
		{
			name:   "admin path is excluded",
			method: "GET",
			path:   "/manage/devotions",
		},
		{
			name:   "login path is excluded",
			method: "GET",
			path:   "/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.expectLookup {
				seen := 0
				if tt.alreadySeen {
					seen = 1
				}
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(seen))
			}
			if tt.expectInsert {
				mock.ExpectExec("INSERT INTO \"page_view\"").
					WillReturnResult(sqlmock.NewResult(1, 1))
			}

			c, _ := setupTestContext()
			c.Request = httptest.NewRequest(tt.method, tt.path, nil)

			TrackPageViews(c)

			// Give the middleware's DB work a moment; it runs inline here but
			// the sqlmock expectations are the real assertion.
			time.Sleep(time.Millisecond)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPageNameForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/", "Home"},
		{"/devotions/walking-in-faith/", "Devotions"},
		{"/prayer-requests", "Prayer Requests"},
		{"/events", "Events"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pageNameForPath(tt.path))
		})
	}
}
