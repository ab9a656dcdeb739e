package models

import "time"

// Coordinator application track constants
const (
	CoordinatorTrackCampus       = "campus"
	CoordinatorTrackProfessional = "professional"
)

// Coordinator application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
)

type CoordinatorApplication struct {
	Application_ID  int       `json:"applicationId" db:"coordinator_application_id" goqu:"skipinsert"`
	Full_Name       string    `json:"fullName" db:"full_name"`
	Email           string    `json:"email" db:"email"`
	Phone           string    `json:"phone" db:"phone"`
	Country         string    `json:"country" db:"country"`
	Track           string    `json:"track" db:"track"`
	Institution     string    `json:"institution" db:"institution"`
	Motivation      string    `json:"motivation" db:"motivation"`
	Status          string    `json:"status" db:"status"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type CoordinatorApplicationCreate struct {
	Full_Name   string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Country     string `json:"country"`
	Track       string `json:"track" binding:"required,oneof=campus professional"`
	Institution string `json:"institution"`
	Motivation  string `json:"motivation"`
}
