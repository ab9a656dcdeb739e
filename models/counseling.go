package models

import "time"

// Counseling booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type CounselingBooking struct {
	Booking_ID       int        `json:"bookingId" db:"counseling_booking_id" goqu:"skipinsert"`
	Full_Name        string     `json:"fullName" db:"full_name"`
	Email            string     `json:"email" db:"email"`
	Phone            string     `json:"phone" db:"phone"`
	Country          string     `json:"country" db:"country"`
	Preferred_Date   time.Time  `json:"preferredDate" db:"preferred_date"`
	Preferred_Time   string     `json:"preferredTime" db:"preferred_time"`
	Approved_Date    *time.Time `json:"approvedDate" db:"approved_date"`
	Approved_Time    *string    `json:"approvedTime" db:"approved_time"`
	Duration_Minutes int        `json:"durationMinutes" db:"duration_minutes"`
	Topic            string     `json:"topic" db:"topic"`
	Message          string     `json:"message" db:"message"`
	Status           string     `json:"status" db:"status"`
	Email_Sent       bool       `json:"emailSent" db:"email_sent" goqu:"skipinsert"`
	SMS_Sent         bool       `json:"smsSent" db:"sms_sent" goqu:"skipinsert"`
	Calendar_Event   string     `json:"calendarEventId" db:"calendar_event_id" goqu:"skipinsert"`
	Datetime_Create  time.Time  `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update  time.Time  `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type CounselingBookingCreate struct {
	Full_Name      string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone" binding:"required"`
	Country        string `json:"country"`
	Preferred_Date string `json:"preferredDate" binding:"required"`
	Preferred_Time string `json:"preferredTime" binding:"required"`
	Topic          string `json:"topic"`
	Message        string `json:"message"`
}

type CounselingBookingApprove struct {
	Approved_Date string `json:"approvedDate" binding:"required"`
	Approved_Time string `json:"approvedTime" binding:"required"`
}
