package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/UpliftAfrika/models"
)

// CalendarService creates Google Calendar events for approved counseling
// sessions so the counselor's calendar stays in sync.
type CalendarService struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
}

var calendarService *CalendarService

func InitCalendarService() {
	if os.Getenv("GOOGLE_CALENDAR_ENABLED") != "true" {
		log.Println("Google Calendar integration disabled")
		return
	}

	credentialsPath := os.Getenv("GOOGLE_CALENDAR_CREDENTIALS_PATH")
	if credentialsPath == "" {
		log.Println("WARNING: GOOGLE_CALENDAR_CREDENTIALS_PATH not set. Calendar service will not be available.")
		return
	}

	svc, err := calendar.NewService(context.Background(), option.WithCredentialsFile(credentialsPath))
	if err != nil {
		log.Printf("Failed to initialize Google Calendar service: %v", err)
		return
	}

	calendarID := os.Getenv("GOOGLE_CALENDAR_ID")
	if calendarID == "" {
		calendarID = "primary"
	}

	timezone := os.Getenv("GOOGLE_CALENDAR_TIMEZONE")
	if timezone == "" {
		timezone = "Africa/Accra"
	}

	calendarService = &CalendarService{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
	}

	log.Println("Google Calendar service initialized successfully")
}

func GetCalendarService() *CalendarService {
	return calendarService
}

// CreateBookingEvent creates a calendar event for an approved booking and
// returns the event ID.
func (s *CalendarService) CreateBookingEvent(booking models.CounselingBooking) (string, error) {
	if s == nil || s.svc == nil {
		return "", fmt.Errorf("calendar service not initialized")
	}
	if booking.Approved_Date == nil || booking.Approved_Time == nil {
		return "", fmt.Errorf("booking must have an approved date and time")
	}

	loc, err := time.LoadLocation(s.timezone)
	if err != nil {
		return "", fmt.Errorf("invalid calendar timezone %q: %v", s.timezone, err)
	}

	sessionTime, err := time.ParseInLocation("15:04", *booking.Approved_Time, loc)
	if err != nil {
		return "", fmt.Errorf("invalid approved time %q: %v", *booking.Approved_Time, err)
	}

	d := booking.Approved_Date
	start := time.Date(d.Year(), d.Month(), d.Day(), sessionTime.Hour(), sessionTime.Minute(), 0, 0, loc)
	end := start.Add(time.Duration(booking.Duration_Minutes) * time.Minute)

	topic := booking.Topic
	if topic == "" {
		topic = "General Counseling"
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Counseling Session - %s", booking.Full_Name),
		Description: fmt.Sprintf("Topic: %s\n\n%s", topic, booking.Message),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: s.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: s.timezone,
		},
	}

	if booking.Email != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: booking.Email}}
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %v", err)
	}

	log.Printf("Created calendar event %s for booking %d", created.Id, booking.Booking_ID)
	return created.Id, nil
}
