package models

import "time"

// Pledge type constants
const (
	PledgeTypeMonetary    = "monetary"
	PledgeTypeNonMonetary = "non_monetary"
)

// Pledge status constants
const (
	PledgeStatusPending   = "pending"
	PledgeStatusFulfilled = "fulfilled"
	PledgeStatusCancelled = "cancelled"
)

type Pledge struct {
	Pledge_ID                int       `json:"pledgeId" db:"pledge_id" goqu:"skipinsert"`
	Full_Name                string    `json:"fullName" db:"full_name"`
	Email                    string    `json:"email" db:"email"`
	Phone                    string    `json:"phone" db:"phone"`
	Pledge_Type              string    `json:"pledgeType" db:"pledge_type"`
	Amount                   *float64  `json:"amount" db:"amount"`
	Non_Monetary_Description string    `json:"nonMonetaryDescription" db:"non_monetary_description"`
	Status                   string    `json:"status" db:"status"`
	Datetime_Create          time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update          time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type PledgeCreate struct {
	Full_Name                string   `json:"fullName" binding:"required"`
	Email                    string   `json:"email" binding:"omitempty,email"`
	Phone                    string   `json:"phone"`
	Pledge_Type              string   `json:"pledgeType" binding:"omitempty,oneof=monetary non_monetary"`
	Amount                   *float64 `json:"amount"`
	Non_Monetary_Description string   `json:"nonMonetaryDescription"`
}
