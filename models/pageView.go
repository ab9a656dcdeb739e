package models

import "time"

type PageView struct {
	Page_View_ID    int       `json:"pageViewId" db:"page_view_id" goqu:"skipinsert"`
	Path            string    `json:"path" db:"path"`
	Page_Name       string    `json:"pageName" db:"page_name"`
	IP_Address      string    `json:"ipAddress" db:"ip_address"`
	User_Agent      string    `json:"userAgent" db:"user_agent"`
	Referer         string    `json:"referer" db:"referer"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
}

type PageViewCount struct {
	Path      string `json:"path" db:"path"`
	Page_Name string `json:"pageName" db:"page_name"`
	Views     int    `json:"views" db:"views"`
}

type DailyViewCount struct {
	Day   time.Time `json:"day" db:"day"`
	Views int       `json:"views" db:"views"`
}
