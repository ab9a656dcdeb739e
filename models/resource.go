package models

import "time"

// Resource type constants
const (
	ResourceTypePDF   = "pdf"
	ResourceTypeAudio = "audio"
	ResourceTypeVideo = "video"
	ResourceTypeImage = "image"
	ResourceTypeOther = "other"
)

type ResourceCategory struct {
	Category_ID     int       `json:"categoryId" db:"resource_category_id" goqu:"skipinsert"`
	Name            string    `json:"name" db:"name"`
	Slug            string    `json:"slug" db:"slug"`
	Description     string    `json:"description" db:"description"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type Resource struct {
	Resource_ID     int       `json:"resourceId" db:"resource_id" goqu:"skipinsert"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Category_ID     int       `json:"categoryId" db:"resource_category_id"`
	Resource_Type   string    `json:"resourceType" db:"resource_type"`
	Description     string    `json:"description" db:"description"`
	File_URL        string    `json:"fileUrl" db:"file_url"`
	External_URL    string    `json:"externalUrl" db:"external_url"`
	Is_Featured     bool      `json:"isFeatured" db:"is_featured"`
	Download_Count  int       `json:"downloadCount" db:"download_count" goqu:"skipinsert"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type ResourceCreate struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug"`
	Category_ID   int    `json:"categoryId" binding:"required"`
	Resource_Type string `json:"resourceType" binding:"required,oneof=pdf audio video image other"`
	Description   string `json:"description"`
	File_URL      string `json:"fileUrl"`
	External_URL  string `json:"externalUrl"`
	Is_Featured   bool   `json:"isFeatured"`
}

type ResourceCategoryCreate struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
