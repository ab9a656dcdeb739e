package controllers

import (
	"time"

	"github.com/UpliftAfrika/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockUser creates a sample staff user profile for testing
func MockUser() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 1,
		Username:        "testuser",
		First_Name:      "Test",
		Last_Name:       "User",
		Email:           "test@example.com",
		Admin:           false,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockUserWithPassword creates a sample user with a bcrypt hashed password
// Password is "password123" - use this in tests
func MockUserWithPassword() models.UserProfile {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return models.UserProfile{
		User_Profile_ID: 1,
		Username:        "testuser",
		Password:        string(hashedPassword),
		First_Name:      "Test",
		Last_Name:       "User",
		Email:           "test@example.com",
		Admin:           false,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockAdminUser creates a sample admin user for testing
func MockAdminUser() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 2,
		Username:        "adminuser",
		First_Name:      "Admin",
		Last_Name:       "User",
		Email:           "admin@example.com",
		Admin:           true,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockDevotion creates a sample published devotion for testing
func MockDevotion() models.Devotion {
	return models.Devotion{
		Devotion_ID:         1,
		Title:               "Walking in Faith",
		Slug:                "walking-in-faith",
		Theme:               "Faith",
		Topic:               "Trust",
		Scripture_Reference: "Hebrews 11:1",
		Passage_Text:        "Now faith is confidence in what we hope for and assurance about what we do not see.",
		Body:                "Faith is the foundation of our walk with God.",
		Reflection:          "Where do you need to trust God more today?",
		Prayer:              "Lord, increase my faith.",
		Action_Point:        "Write down one area where you will trust God this week.",
		Publish_Date:        time.Now(),
		Is_Published:        true,
		Datetime_Create:     time.Now(),
		Datetime_Update:     time.Now(),
	}
}

// devotionColumns is the column list used when mocking devotion rows
var devotionColumns = []string{
	"devotion_id", "title", "slug", "devotion_series_id", "theme", "topic",
	"scripture_reference", "passage_text", "body", "quote", "reflection",
	"prayer", "action_point", "publish_date", "is_published", "audio_url",
	"pdf_url", "featured", "view_count", "datetime_create", "datetime_update",
}

// subscriberColumns is the column list used when mocking subscriber rows
var subscriberColumns = []string{
	"subscriber_id", "email", "phone", "channel", "is_active",
	"receive_daily_devotion", "receive_special_programs",
	"datetime_create", "datetime_update",
}
