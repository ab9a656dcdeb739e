package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/doug-martin/goqu/v9"
)

// GetTodaysDevotion returns the published devotion whose publish date is
// today, falling back to the most recent published one when today has none.
func GetTodaysDevotion(c *gin.Context) {
	var devotion models.Devotion

	found, err := initializers.DB.From("devotion").
		Where(goqu.Ex{
			"publish_date": time.Now().Format("2006-01-02"),
			"is_published": true,
		}).
		ScanStruct(&devotion)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotion"})
		return
	}

	if !found {
		found, err = initializers.DB.From("devotion").
			Where(
				goqu.C("is_published").IsTrue(),
				goqu.C("publish_date").Lte(time.Now()),
			).
			Order(goqu.I("publish_date").Desc()).
			Limit(1).
			ScanStruct(&devotion)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotion"})
			return
		}
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No devotion available"})
		return
	}

	c.JSON(http.StatusOK, devotion)
}

// GetDevotions lists published devotions newest first. Supports optional
// series and featured filters plus limit/offset paging.
func GetDevotions(c *gin.Context) {
	exprs := []goqu.Expression{
		goqu.C("is_published").IsTrue(),
		goqu.C("publish_date").Lte(time.Now()),
	}

	if series := c.Query("series"); series != "" {
		seriesID, err := strconv.Atoi(series)
		if err != nil {
			// Series can also be referenced by slug.
			var dbSeries models.DevotionSeries
			found, err := initializers.DB.From("devotion_series").
				Where(goqu.C("slug").Eq(series)).
				ScanStruct(&dbSeries)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotions"})
				return
			}
			if !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown devotion series"})
				return
			}
			seriesID = dbSeries.Series_ID
		}
		exprs = append(exprs, goqu.C("devotion_series_id").Eq(seriesID))
	}

	if c.Query("featured") == "true" {
		exprs = append(exprs, goqu.C("featured").IsTrue())
	}

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		exprs = append(exprs, goqu.C("publish_date").Eq(date))
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		exprs = append(exprs, goqu.Or(
			goqu.C("title").ILike(pattern),
			goqu.C("body").ILike(pattern),
			goqu.C("scripture_reference").ILike(pattern),
		))
	}

	limit := uint(20)
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.ParseUint(l, 10, 32)
		if err != nil || parsed == 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = uint(parsed)
	}

	offset := uint(0)
	if o := c.Query("offset"); o != "" {
		parsed, err := strconv.ParseUint(o, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
			return
		}
		offset = uint(parsed)
	}

	var devotions []models.Devotion
	err := initializers.DB.From("devotion").
		Where(exprs...).
		Order(goqu.I("publish_date").Desc()).
		Limit(limit).
		Offset(offset).
		ScanStructs(&devotions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotions"})
		return
	}

	c.JSON(http.StatusOK, devotions)
}

// GetDevotionBySlug returns one published devotion and bumps its view count.
func GetDevotionBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var devotion models.Devotion
	found, err := initializers.DB.From("devotion").
		Where(goqu.Ex{"slug": slug, "is_published": true}).
		ScanStruct(&devotion)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotion"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Devotion not found"})
		return
	}

	// View counting is best effort.
	_, err = initializers.DB.Update("devotion").
		Set(goqu.Record{"view_count": goqu.L("view_count + 1")}).
		Where(goqu.C("devotion_id").Eq(devotion.Devotion_ID)).
		Executor().Exec()
	if err == nil {
		devotion.View_Count++
	}

	c.JSON(http.StatusOK, devotion)
}

func GetDevotionSeries(c *gin.Context) {
	var series []models.DevotionSeries

	err := initializers.DB.From("devotion_series").
		Where(goqu.C("is_active").IsTrue()).
		Order(goqu.I("start_date").Desc()).
		ScanStructs(&series)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotion series"})
		return
	}

	c.JSON(http.StatusOK, series)
}

func CreateDevotion(c *gin.Context) {
	var req models.DevotionCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publishDate, err := time.Parse("2006-01-02", req.Publish_Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publish date, expected YYYY-MM-DD"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	slugCount, err := initializers.DB.From("devotion").Where(goqu.C("slug").Eq(slug)).Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if slugCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A devotion with this slug already exists"})
		return
	}

	devotion := models.Devotion{
		Title:               req.Title,
		Slug:                slug,
		Series_ID:           req.Series_ID,
		Theme:               req.Theme,
		Topic:               req.Topic,
		Scripture_Reference: req.Scripture_Reference,
		Passage_Text:        req.Passage_Text,
		Body:                req.Body,
		Quote:               req.Quote,
		Reflection:          req.Reflection,
		Prayer:              req.Prayer,
		Action_Point:        req.Action_Point,
		Publish_Date:        publishDate,
		Is_Published:        req.Is_Published,
		Audio_URL:           req.Audio_URL,
		PDF_URL:             req.PDF_URL,
		Featured:            req.Featured,
	}

	insert := initializers.DB.Insert("devotion").Rows(devotion).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Devotion created successfully.",
		"devotion": devotion,
	})
}

func UpdateDevotion(c *gin.Context) {
	devotionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid devotion ID"})
		return
	}

	var req models.DevotionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publishDate, err := time.Parse("2006-01-02", req.Publish_Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publish date, expected YYYY-MM-DD"})
		return
	}

	record := goqu.Record{
		"title":               req.Title,
		"theme":               req.Theme,
		"topic":               req.Topic,
		"scripture_reference": req.Scripture_Reference,
		"passage_text":        req.Passage_Text,
		"body":                req.Body,
		"quote":               req.Quote,
		"reflection":          req.Reflection,
		"prayer":              req.Prayer,
		"action_point":        req.Action_Point,
		"publish_date":        publishDate,
		"is_published":        req.Is_Published,
		"audio_url":           req.Audio_URL,
		"pdf_url":             req.PDF_URL,
		"featured":            req.Featured,
		"devotion_series_id":  req.Series_ID,
		"datetime_update":     time.Now(),
	}
	if req.Slug != "" {
		record["slug"] = req.Slug
	}

	result, err := initializers.DB.Update("devotion").
		Set(record).
		Where(goqu.C("devotion_id").Eq(devotionID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Devotion not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Devotion updated successfully."})
}

func DeleteDevotion(c *gin.Context) {
	devotionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid devotion ID"})
		return
	}

	result, err := initializers.DB.Delete("devotion").
		Where(goqu.C("devotion_id").Eq(devotionID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Devotion not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Devotion deleted successfully."})
}

func CreateDevotionSeries(c *gin.Context) {
	var req models.DevotionSeriesCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	series := models.DevotionSeries{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Is_Active:   true,
	}

	if req.Start_Date != "" {
		startDate, err := time.Parse("2006-01-02", req.Start_Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		series.Start_Date = &startDate
	}
	if req.End_Date != "" {
		endDate, err := time.Parse("2006-01-02", req.End_Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
		series.End_Date = &endDate
	}
	if req.Is_Active != nil {
		series.Is_Active = *req.Is_Active
	}

	insert := initializers.DB.Insert("devotion_series").Rows(series).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Devotion series created successfully.",
		"series":  series,
	})
}

func UpdateDevotionSeries(c *gin.Context) {
	seriesID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	var req models.DevotionSeriesCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := goqu.Record{
		"title":           req.Title,
		"description":     req.Description,
		"datetime_update": time.Now(),
	}
	if req.Slug != "" {
		record["slug"] = req.Slug
	}
	if req.Start_Date != "" {
		startDate, err := time.Parse("2006-01-02", req.Start_Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		record["start_date"] = startDate
	}
	if req.End_Date != "" {
		endDate, err := time.Parse("2006-01-02", req.End_Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
		record["end_date"] = endDate
	}
	if req.Is_Active != nil {
		record["is_active"] = *req.Is_Active
	}

	result, err := initializers.DB.Update("devotion_series").
		Set(record).
		Where(goqu.C("devotion_series_id").Eq(seriesID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Devotion series not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Devotion series updated successfully."})
}

// Slugify builds a URL slug from a title.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
