package models

import "time"

// Donation status constants
const (
	DonationStatusPending = "pending"
	DonationStatusSuccess = "success"
	DonationStatusFailed  = "failed"
)

type Donation struct {
	Donation_ID        int       `json:"donationId" db:"donation_id" goqu:"skipinsert"`
	Name               string    `json:"name" db:"name"`
	Email              string    `json:"email" db:"email"`
	Amount_GHS         float64   `json:"amountGhs" db:"amount_ghs"`
	Paystack_Reference string    `json:"paystackReference" db:"paystack_reference"`
	Status             string    `json:"status" db:"status"`
	Note               string    `json:"note" db:"note"`
	Raw_Response       *string   `json:"rawResponse,omitempty" db:"raw_response"`
	Datetime_Create    time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update    time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type DonationCheckoutRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	AmountGHS float64 `json:"amountGhs" binding:"required,gt=0"`
	Note      string  `json:"note"`
}

type ContactMessage struct {
	Contact_Message_ID int       `json:"contactMessageId" db:"contact_message_id" goqu:"skipinsert"`
	Name               string    `json:"name" db:"name"`
	Email              string    `json:"email" db:"email"`
	Subject            string    `json:"subject" db:"subject"`
	Message            string    `json:"message" db:"message"`
	Is_Processed       bool      `json:"isProcessed" db:"is_processed"`
	Datetime_Create    time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update    time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type ContactMessageCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
