package models

import "time"

// SiteSettings is a single-row table (settings_id is always 1).
type SiteSettings struct {
	Settings_ID     int       `json:"settingsId" db:"site_settings_id" goqu:"skipinsert"`
	Zoom_Link       string    `json:"zoomLink" db:"zoom_link"`
	YouTube_URL     string    `json:"youtubeUrl" db:"youtube_url"`
	Facebook_URL    string    `json:"facebookUrl" db:"facebook_url"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type SiteSettingsUpdate struct {
	Zoom_Link    *string `json:"zoomLink"`
	YouTube_URL  *string `json:"youtubeUrl"`
	Facebook_URL *string `json:"facebookUrl"`
}
