package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/doug-martin/goqu/v9"
)

// GetSiteSettings returns the single site settings row. Missing settings
// come back as an empty object so the frontend always has something to bind.
func GetSiteSettings(c *gin.Context) {
	var settings models.SiteSettings

	found, err := initializers.DB.From("site_settings").
		Where(goqu.C("site_settings_id").Eq(1)).
		ScanStruct(&settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site settings"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, models.SiteSettings{})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSiteSettings updates the provided fields of the single settings row,
// creating it when it does not exist yet.
func UpdateSiteSettings(c *gin.Context) {
	var req models.SiteSettingsUpdate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := goqu.Record{"datetime_update": time.Now()}
	if req.Zoom_Link != nil {
		record["zoom_link"] = *req.Zoom_Link
	}
	if req.YouTube_URL != nil {
		record["youtube_url"] = *req.YouTube_URL
	}
	if req.Facebook_URL != nil {
		record["facebook_url"] = *req.Facebook_URL
	}

	count, err := initializers.DB.From("site_settings").
		Where(goqu.C("site_settings_id").Eq(1)).
		Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if count == 0 {
		record["site_settings_id"] = 1
		insert := initializers.DB.Insert("site_settings").Rows(record).Executor()
		if _, err := insert.Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else {
		_, err = initializers.DB.Update("site_settings").
			Set(record).
			Where(goqu.C("site_settings_id").Eq(1)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Site settings updated."})
}
