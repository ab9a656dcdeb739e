package models

import "time"

type DevotionSeries struct {
	Series_ID       int        `json:"seriesId" db:"devotion_series_id" goqu:"skipinsert"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Description     string     `json:"description" db:"description"`
	Start_Date      *time.Time `json:"startDate" db:"start_date"`
	End_Date        *time.Time `json:"endDate" db:"end_date"`
	Is_Active       bool       `json:"isActive" db:"is_active"`
	Datetime_Create time.Time  `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time  `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type Devotion struct {
	Devotion_ID         int       `json:"devotionId" db:"devotion_id" goqu:"skipinsert"`
	Title               string    `json:"title" db:"title"`
	Slug                string    `json:"slug" db:"slug"`
	Series_ID           *int      `json:"seriesId" db:"devotion_series_id"`
	Theme               string    `json:"theme" db:"theme"`
	Topic               string    `json:"topic" db:"topic"`
	Scripture_Reference string    `json:"scriptureReference" db:"scripture_reference"`
	Passage_Text        string    `json:"passageText" db:"passage_text"`
	Body                string    `json:"body" db:"body"`
	Quote               string    `json:"quote" db:"quote"`
	Reflection          string    `json:"reflection" db:"reflection"`
	Prayer              string    `json:"prayer" db:"prayer"`
	Action_Point        string    `json:"actionPoint" db:"action_point"`
	Publish_Date        time.Time `json:"publishDate" db:"publish_date"`
	Is_Published        bool      `json:"isPublished" db:"is_published"`
	Audio_URL           string    `json:"audioUrl" db:"audio_url"`
	PDF_URL             string    `json:"pdfUrl" db:"pdf_url"`
	Featured            bool      `json:"featured" db:"featured"`
	View_Count          int       `json:"viewCount" db:"view_count" goqu:"skipinsert"`
	Datetime_Create     time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update     time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type DevotionCreate struct {
	Title               string `json:"title" binding:"required"`
	Slug                string `json:"slug"`
	Series_ID           *int   `json:"seriesId"`
	Theme               string `json:"theme"`
	Topic               string `json:"topic"`
	Scripture_Reference string `json:"scriptureReference"`
	Passage_Text        string `json:"passageText"`
	Body                string `json:"body" binding:"required"`
	Quote               string `json:"quote"`
	Reflection          string `json:"reflection"`
	Prayer              string `json:"prayer"`
	Action_Point        string `json:"actionPoint"`
	Publish_Date        string `json:"publishDate" binding:"required"`
	Is_Published        bool   `json:"isPublished"`
	Audio_URL           string `json:"audioUrl"`
	PDF_URL             string `json:"pdfUrl"`
	Featured            bool   `json:"featured"`
}

type DevotionSeriesCreate struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Start_Date  string `json:"startDate"`
	End_Date    string `json:"endDate"`
	Is_Active   *bool  `json:"isActive"`
}
