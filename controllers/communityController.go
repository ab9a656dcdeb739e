package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/UpliftAfrika/services"
	"github.com/doug-martin/goqu/v9"
)

// SubmitPrayerRequest records a public prayer request and alerts the
// ministry team.
func SubmitPrayerRequest(c *gin.Context) {
	var req models.PrayerRequestCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.PrayerRequest{
		Name:      req.Name,
		Email:     req.Email,
		Request:   req.Request,
		Is_Public: req.Is_Public,
	}

	insert := initializers.DB.Insert("prayer_request").Rows(request).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfPrayerRequest(request)

	c.JSON(http.StatusCreated, gin.H{"message": "Prayer request submitted. We are praying with you."})
}

// GetPublicPrayerRequests lists requests the submitter chose to share.
func GetPublicPrayerRequests(c *gin.Context) {
	var requests []models.PrayerRequest

	err := initializers.DB.From("prayer_request").
		Where(goqu.C("is_public").IsTrue()).
		Order(goqu.I("datetime_create").Desc()).
		Limit(50).
		ScanStructs(&requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetAllPrayerRequests lists every request for the ministry team.
func GetAllPrayerRequests(c *gin.Context) {
	var requests []models.PrayerRequest

	err := initializers.DB.From("prayer_request").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

func MarkPrayerRequestPrayedFor(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	result, err := initializers.DB.Update("prayer_request").
		Set(goqu.Record{"is_prayed_for": true, "datetime_update": time.Now()}).
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request marked as prayed for."})
}

func DeletePrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	result, err := initializers.DB.Delete("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer request deleted."})
}

// SubmitTestimony records a testimony for review and alerts the team.
// Testimonies are not public until approved.
func SubmitTestimony(c *gin.Context) {
	var req models.TestimonyCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimony := models.Testimony{
		Name:      req.Name,
		Country:   req.Country,
		Testimony: req.Testimony,
		Is_Public: true,
	}
	if req.Is_Public != nil {
		testimony.Is_Public = *req.Is_Public
	}

	insert := initializers.DB.Insert("testimony").Rows(testimony).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfTestimony(testimony)

	c.JSON(http.StatusCreated, gin.H{"message": "Testimony submitted. Thank you for sharing!"})
}

// GetApprovedTestimonies lists approved, shareable testimonies.
func GetApprovedTestimonies(c *gin.Context) {
	exprs := []goqu.Expression{
		goqu.C("is_approved").IsTrue(),
		goqu.C("is_public").IsTrue(),
	}

	if c.Query("featured") == "true" {
		exprs = append(exprs, goqu.C("featured").IsTrue())
	}

	var testimonies []models.Testimony
	err := initializers.DB.From("testimony").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		Limit(50).
		ScanStructs(&testimonies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonies"})
		return
	}

	c.JSON(http.StatusOK, testimonies)
}

func GetAllTestimonies(c *gin.Context) {
	var testimonies []models.Testimony

	err := initializers.DB.From("testimony").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&testimonies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonies"})
		return
	}

	c.JSON(http.StatusOK, testimonies)
}

func ApproveTestimony(c *gin.Context) {
	testimonyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimony ID"})
		return
	}

	record := goqu.Record{"is_approved": true, "datetime_update": time.Now()}
	if c.Query("featured") == "true" {
		record["featured"] = true
	}

	result, err := initializers.DB.Update("testimony").
		Set(record).
		Where(goqu.C("testimony_id").Eq(testimonyID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimony not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimony approved."})
}

func DeleteTestimony(c *gin.Context) {
	testimonyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimony ID"})
		return
	}

	result, err := initializers.DB.Delete("testimony").
		Where(goqu.C("testimony_id").Eq(testimonyID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimony not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimony deleted."})
}

// SubmitContactMessage records a contact form submission.
func SubmitContactMessage(c *gin.Context) {
	var req models.ContactMessageCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	insert := initializers.DB.Insert("contact_message").Rows(message).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfContactMessage(message)

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent. We'll get back to you soon."})
}

func GetContactMessages(c *gin.Context) {
	var messages []models.ContactMessage

	err := initializers.DB.From("contact_message").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&messages)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
