package models

import "time"

// Subscriber channel constants
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

type Subscriber struct {
	Subscriber_ID            int       `json:"subscriberId" db:"subscriber_id" goqu:"skipinsert"`
	Email                    string    `json:"email" db:"email"`
	Phone                    string    `json:"phone" db:"phone"`
	Channel                  string    `json:"channel" db:"channel"`
	Is_Active                bool      `json:"isActive" db:"is_active"`
	Receive_Daily_Devotion   bool      `json:"receiveDailyDevotion" db:"receive_daily_devotion"`
	Receive_Special_Programs bool      `json:"receiveSpecialPrograms" db:"receive_special_programs"`
	Datetime_Create          time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update          time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type SubscribeRequest struct {
	Channel                string `json:"channel" binding:"required,oneof=email sms whatsapp"`
	Email                  string `json:"email" binding:"omitempty,email"`
	Phone                  string `json:"phone"`
	ReceiveDailyDevotion   *bool  `json:"receiveDailyDevotion"`
	ReceiveSpecialPrograms *bool  `json:"receiveSpecialPrograms"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}
