package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/UpliftAfrika/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func mockDevotionRow(devotion models.Devotion) *sqlmock.Rows {
	return sqlmock.NewRows(devotionColumns).AddRow(
		devotion.Devotion_ID, devotion.Title, devotion.Slug, nil, devotion.Theme,
		devotion.Topic, devotion.Scripture_Reference, devotion.Passage_Text,
		devotion.Body, devotion.Quote, devotion.Reflection, devotion.Prayer,
		devotion.Action_Point, devotion.Publish_Date, devotion.Is_Published,
		devotion.Audio_URL, devotion.PDF_URL, devotion.Featured,
		devotion.View_Count, devotion.Datetime_Create, devotion.Datetime_Update,
	)
}

func TestGetTodaysDevotion(t *testing.T) {
	tests := []struct {
		name            string
		hasTodaysEntry  bool
		hasFallback     bool
		expectedStatus  int
	}{
		{
			name:           "devotion published today",
			hasTodaysEntry: true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "falls back to most recent devotion",
			hasTodaysEntry: false,
			hasFallback:    true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no devotions at all",
			hasTodaysEntry: false,
			hasFallback:    false,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.hasTodaysEntry {
				mock.ExpectQuery("SELECT").WillReturnRows(mockDevotionRow(MockDevotion()))
			} else {
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(devotionColumns))
				if tt.hasFallback {
					mock.ExpectQuery("SELECT").WillReturnRows(mockDevotionRow(MockDevotion()))
				} else {
					mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(devotionColumns))
				}
			}

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("GET", "/devotions/today", nil)

			GetTodaysDevotion(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response models.Devotion
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, "walking-in-faith", response.Slug)
			}
		})
	}
}

func TestGetDevotionBySlug(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		found          bool
		expectedStatus int
	}{
		{
			name:           "existing devotion bumps view count",
			slug:           "walking-in-faith",
			found:          true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown slug",
			slug:           "does-not-exist",
			found:          false,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.found {
				mock.ExpectQuery("SELECT").WillReturnRows(mockDevotionRow(MockDevotion()))
				mock.ExpectExec("UPDATE \"devotion\"").WillReturnResult(sqlmock.NewResult(0, 1))
			} else {
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(devotionColumns))
			}

			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("GET", "/devotions/"+tt.slug, nil)
			c.Params = append(c.Params, gin.Param{Key: "slug", Value: tt.slug})

			GetDevotionBySlug(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.found {
				var response models.Devotion
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, 1, response.View_Count)
			}
		})
	}
}

func TestCreateDevotion(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		slugTaken      bool
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: map[string]interface{}{
				"title":       "Morning Grace",
				"body":        "Grace greets us every morning.",
				"publishDate": "2026-09-01",
				"isPublished": true,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate slug",
			body: map[string]interface{}{
				"title":       "Morning Grace",
				"body":        "Grace greets us every morning.",
				"publishDate": "2026-09-01",
			},
			slugTaken:      true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid publish date",
			body: map[string]interface{}{
				"title":       "Morning Grace",
				"body":        "Grace greets us every morning.",
				"publishDate": "September 1st",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing body",
			body: map[string]interface{}{
				"title":       "Morning Grace",
				"publishDate": "2026-09-01",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusCreated {
				mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO \"devotion\"").WillReturnResult(sqlmock.NewResult(1, 1))
			} else if tt.slugTaken {
				mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			}

			jsonData, _ := json.Marshal(tt.body)

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Request = httptest.NewRequest("POST", "/manage/devotions", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateDevotion(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUpdateDevotion(t *testing.T) {
	body := map[string]interface{}{
		"title":       "Morning Grace",
		"body":        "Grace greets us every morning.",
		"publishDate": "2026-09-01",
		"isPublished": true,
	}

	tests := []struct {
		name           string
		devotionID     string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "successful update",
			devotionID:     "1",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "devotion not found",
			devotionID:     "99",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid devotion ID",
			devotionID:     "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.devotionID != "abc" {
				mock.ExpectExec("UPDATE \"devotion\"").WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			jsonData, _ := json.Marshal(body)

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Request = httptest.NewRequest("PATCH", "/manage/devotions/"+tt.devotionID, bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = append(c.Params, gin.Param{Key: "id", Value: tt.devotionID})

			UpdateDevotion(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Walking in Faith", "walking-in-faith"},
		{"  Grace & Truth!  ", "grace-truth"},
		{"40 Days of Prayer", "40-days-of-prayer"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestGetDevotionsPaging(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(devotionColumns)
	for i := 1; i <= 2; i++ {
		devotion := MockDevotion()
		rows.AddRow(
			i, devotion.Title, devotion.Slug, nil, devotion.Theme, devotion.Topic,
			devotion.Scripture_Reference, devotion.Passage_Text, devotion.Body,
			devotion.Quote, devotion.Reflection, devotion.Prayer, devotion.Action_Point,
			now, true, "", "", false, 0, now, now,
		)
	}
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest("GET", "/devotions?limit=2", nil)

	GetDevotions(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []models.Devotion
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
}

func TestGetDevotionsInvalidLimit(t *testing.T) {
	_, _, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest("GET", "/devotions?limit=1000", nil)

	GetDevotions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
