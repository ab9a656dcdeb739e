package models

import "time"

// Question status constants
const (
	QuestionStatusPending  = "pending"
	QuestionStatusAnswered = "answered"
)

type Question struct {
	Question_ID     int       `json:"questionId" db:"question_id" goqu:"skipinsert"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Topic           string    `json:"topic" db:"topic"`
	Question        string    `json:"question" db:"question"`
	Answer          string    `json:"answer" db:"answer"`
	Status          string    `json:"status" db:"status"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type QuestionCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Topic    string `json:"topic" binding:"required"`
	Question string `json:"question" binding:"required"`
}

type QuestionAnswer struct {
	Answer string `json:"answer" binding:"required"`
}
