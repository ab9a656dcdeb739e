package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
)

var devotionColumns = []string{
	"devotion_id", "title", "slug", "devotion_series_id", "theme", "topic",
	"scripture_reference", "passage_text", "body", "quote", "reflection",
	"prayer", "action_point", "publish_date", "is_published", "audio_url",
	"pdf_url", "featured", "view_count", "datetime_create", "datetime_update",
}

var subscriberColumns = []string{
	"subscriber_id", "email", "phone", "channel", "is_active",
	"receive_daily_devotion", "receive_special_programs",
	"datetime_create", "datetime_update",
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	originalDB := initializers.DB
	initializers.DB = goqu.New("postgres", db)

	return mock, func() {
		db.Close()
		initializers.DB = originalDB
	}
}

func devotionRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(devotionColumns).AddRow(
		1, "Walking in Faith", "walking-in-faith", nil, "Faith", "Trust",
		"Hebrews 11:1", "Now faith is confidence in what we hope for.",
		"Faith is the foundation of our walk with God.", "", "", "Lord, increase my faith.",
		"", now, true, "", "", false, 0, now, now,
	)
}

func TestDevotionForDate(t *testing.T) {
	t.Run("devotion exists", func(t *testing.T) {
		mock, cleanup := setupMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(devotionRow())

		devotion, err := DevotionForDate(time.Now())

		assert.NoError(t, err)
		assert.NotNil(t, devotion)
		assert.Equal(t, "walking-in-faith", devotion.Slug)
	})

	t.Run("no devotion for the day", func(t *testing.T) {
		mock, cleanup := setupMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(devotionColumns))

		devotion, err := DevotionForDate(time.Now())

		assert.NoError(t, err)
		assert.Nil(t, devotion)
	})
}

func TestActiveSubscribers(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(subscriberColumns).
		AddRow(1, "a@example.com", "", "email", true, true, true, now, now).
		AddRow(2, "b@example.com", "", "email", true, true, false, now, now)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	subscribers, err := ActiveSubscribers("email", "daily_devotion")

	assert.NoError(t, err)
	assert.Len(t, subscribers, 2)
	assert.Equal(t, "a@example.com", subscribers[0].Email)
}

func TestSendDailyDevotionsDryRun(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()

	// Devotion lookup, then one subscriber query per channel.
	mock.ExpectQuery("SELECT").WillReturnRows(devotionRow())
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(subscriberColumns).
		AddRow(1, "a@example.com", "", "email", true, true, true, now, now).
		AddRow(2, "b@example.com", "", "email", true, true, true, now, now))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(subscriberColumns).
		AddRow(3, "", "+233241234567", "sms", true, true, true, now, now))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(subscriberColumns))

	result, err := SendDailyDevotions(true, false)

	assert.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.EmailSent)
	assert.Equal(t, 1, result.SMSSent)
	assert.Equal(t, 0, result.WhatsAppSent)
	assert.Equal(t, 0, result.TotalFailed())
}

func TestSendDailyDevotionsNoDevotionWithoutForce(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(devotionColumns))

	_, err := SendDailyDevotions(false, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no published devotion")
}

func testNotification(status string) models.ScheduledNotification {
	return models.ScheduledNotification{
		Notification_ID:   1,
		Title:             "Prayer Conference Reminder",
		Message:           "Join us tonight at 7pm.",
		Notification_Type: models.NotificationTypeCustom,
		Audience:          models.AudienceSpecialPrograms,
		Scheduled_Date:    time.Now(),
		Send_Email:        true,
		Status:            status,
	}
}

func TestDispatchScheduledNotificationRejectsNonScheduled(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	notification := testNotification("paused")

	_, err := DispatchScheduledNotification(notification)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not scheduled")
}

func TestDispatchScheduledNotificationCustomMessage(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// No subscribers on the one enabled channel; the notification is still
	// marked sent with zero counts.
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(subscriberColumns))
	mock.ExpectExec("UPDATE \"scheduled_notification\"").WillReturnResult(sqlmock.NewResult(0, 1))

	notification := testNotification("scheduled")

	result, err := DispatchScheduledNotification(notification)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.TotalSent())
	assert.Equal(t, 0, result.TotalFailed())
}
