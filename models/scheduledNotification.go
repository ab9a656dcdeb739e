package models

import "time"

// Scheduled notification status constants
const (
	NotificationStatusScheduled = "scheduled"
	NotificationStatusPaused    = "paused"
	NotificationStatusSent      = "sent"
	NotificationStatusCancelled = "cancelled"
)

// Scheduled notification type constants
const (
	NotificationTypeDailyDevotion  = "daily_devotion"
	NotificationTypeSpecialProgram = "special_program"
	NotificationTypeCustom         = "custom"
)

// Audience constants select which subscriber preference flag applies.
const (
	AudienceDailyDevotion   = "daily_devotion"
	AudienceSpecialPrograms = "special_programs"
)

type ScheduledNotification struct {
	Notification_ID      int        `json:"notificationId" db:"scheduled_notification_id" goqu:"skipinsert"`
	Title                string     `json:"title" db:"title"`
	Message              string     `json:"message" db:"message"`
	Notification_Type    string     `json:"notificationType" db:"notification_type"`
	Audience             string     `json:"audience" db:"audience"`
	Devotion_ID          *int       `json:"devotionId" db:"devotion_id"`
	Scheduled_Date       time.Time  `json:"scheduledDate" db:"scheduled_date"`
	Send_Email           bool       `json:"sendEmail" db:"send_email"`
	Send_SMS             bool       `json:"sendSms" db:"send_sms"`
	Send_WhatsApp        bool       `json:"sendWhatsapp" db:"send_whatsapp"`
	Status               string     `json:"status" db:"status"`
	Email_Sent_Count     int        `json:"emailSentCount" db:"email_sent_count" goqu:"skipinsert"`
	Email_Failed_Count   int        `json:"emailFailedCount" db:"email_failed_count" goqu:"skipinsert"`
	SMS_Sent_Count       int        `json:"smsSentCount" db:"sms_sent_count" goqu:"skipinsert"`
	SMS_Failed_Count     int        `json:"smsFailedCount" db:"sms_failed_count" goqu:"skipinsert"`
	WhatsApp_Sent_Count  int        `json:"whatsappSentCount" db:"whatsapp_sent_count" goqu:"skipinsert"`
	WhatsApp_Fail_Count  int        `json:"whatsappFailedCount" db:"whatsapp_failed_count" goqu:"skipinsert"`
	Sent_At              *time.Time `json:"sentAt" db:"sent_at"`
	Created_By           int        `json:"createdBy" db:"created_by"`
	Updated_By           int        `json:"updatedBy" db:"updated_by"`
	Datetime_Create      time.Time  `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update      time.Time  `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type ScheduledNotificationCreate struct {
	Title             string `json:"title"`
	Message           string `json:"message"`
	Notification_Type string `json:"notificationType" binding:"required,oneof=daily_devotion special_program custom"`
	Audience          string `json:"audience" binding:"required,oneof=daily_devotion special_programs"`
	Devotion_ID       *int   `json:"devotionId"`
	Scheduled_Date    string `json:"scheduledDate" binding:"required"`
	Send_Email        bool   `json:"sendEmail"`
	Send_SMS          bool   `json:"sendSms"`
	Send_WhatsApp     bool   `json:"sendWhatsapp"`
}
