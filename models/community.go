package models

import "time"

type PrayerRequest struct {
	Prayer_Request_ID int       `json:"prayerRequestId" db:"prayer_request_id" goqu:"skipinsert"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	Request           string    `json:"request" db:"request"`
	Is_Public         bool      `json:"isPublic" db:"is_public"`
	Is_Prayed_For     bool      `json:"isPrayedFor" db:"is_prayed_for"`
	Datetime_Create   time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update   time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Request   string `json:"request" binding:"required"`
	Is_Public bool   `json:"isPublic"`
}

type Testimony struct {
	Testimony_ID    int       `json:"testimonyId" db:"testimony_id" goqu:"skipinsert"`
	Name            string    `json:"name" db:"name"`
	Country         string    `json:"country" db:"country"`
	Testimony       string    `json:"testimony" db:"testimony"`
	Is_Approved     bool      `json:"isApproved" db:"is_approved"`
	Featured        bool      `json:"featured" db:"featured"`
	Is_Public       bool      `json:"isPublic" db:"is_public"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type TestimonyCreate struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Testimony string `json:"testimony" binding:"required"`
	Is_Public *bool  `json:"isPublic"`
}
