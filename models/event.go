package models

import "time"

type Event struct {
	Event_ID          int       `json:"eventId" db:"event_id" goqu:"skipinsert"`
	Title             string    `json:"title" db:"title"`
	Slug              string    `json:"slug" db:"slug"`
	Description       string    `json:"description" db:"description"`
	Start_Datetime    time.Time `json:"startDatetime" db:"start_datetime"`
	End_Datetime      time.Time `json:"endDatetime" db:"end_datetime"`
	Location          string    `json:"location" db:"location"`
	Is_Online         bool      `json:"isOnline" db:"is_online"`
	Livestream_URL    string    `json:"livestreamUrl" db:"livestream_url"`
	YouTube_URL       string    `json:"youtubeUrl" db:"youtube_url"`
	Facebook_URL      string    `json:"facebookUrl" db:"facebook_url"`
	Zoom_URL          string    `json:"zoomUrl" db:"zoom_url"`
	Registration_Open bool      `json:"registrationOpen" db:"registration_open"`
	Datetime_Create   time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update   time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type EventCreate struct {
	Title             string `json:"title" binding:"required"`
	Slug              string `json:"slug"`
	Description       string `json:"description" binding:"required"`
	Start_Datetime    string `json:"startDatetime" binding:"required"`
	End_Datetime      string `json:"endDatetime" binding:"required"`
	Location          string `json:"location"`
	Is_Online         bool   `json:"isOnline"`
	Livestream_URL    string `json:"livestreamUrl"`
	YouTube_URL       string `json:"youtubeUrl"`
	Facebook_URL      string `json:"facebookUrl"`
	Zoom_URL          string `json:"zoomUrl"`
	Registration_Open *bool  `json:"registrationOpen"`
}

type EventRegistration struct {
	Registration_ID int       `json:"registrationId" db:"event_registration_id" goqu:"skipinsert"`
	Event_ID        int       `json:"eventId" db:"event_id"`
	Full_Name       string    `json:"fullName" db:"full_name"`
	Email           string    `json:"email" db:"email"`
	Phone           string    `json:"phone" db:"phone"`
	Country         string    `json:"country" db:"country"`
	Notes           string    `json:"notes" db:"notes"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type EventRegistrationCreate struct {
	Full_Name string `json:"fullName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Notes     string `json:"notes"`
}
