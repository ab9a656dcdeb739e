package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/doug-martin/goqu/v9"
)

// GetUpcomingEvents lists events that have not ended yet, soonest first.
func GetUpcomingEvents(c *gin.Context) {
	var events []models.Event

	err := initializers.DB.From("event").
		Where(goqu.C("end_datetime").Gte(time.Now())).
		Order(goqu.I("start_datetime").Asc()).
		ScanStructs(&events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetPastEvents lists finished events, most recent first.
func GetPastEvents(c *gin.Context) {
	var events []models.Event

	err := initializers.DB.From("event").
		Where(goqu.C("end_datetime").Lt(time.Now())).
		Order(goqu.I("start_datetime").Desc()).
		Limit(50).
		ScanStructs(&events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func GetEventBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var event models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("slug").Eq(slug)).
		ScanStruct(&event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// RegisterForEvent records a public registration for an event that still has
// registration open.
func RegisterForEvent(c *gin.Context) {
	slug := c.Param("slug")

	var event models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("slug").Eq(slug)).
		ScanStruct(&event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if !event.Registration_Open {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration is closed for this event"})
		return
	}

	var req models.EventRegistrationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := initializers.DB.From("event_registration").
		Where(goqu.Ex{"event_id": event.Event_ID, "email": req.Email}).
		Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are already registered for this event"})
		return
	}

	registration := models.EventRegistration{
		Event_ID:  event.Event_ID,
		Full_Name: req.Full_Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Country:   req.Country,
		Notes:     req.Notes,
	}

	insert := initializers.DB.Insert("event_registration").Rows(registration).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully."})
}

func CreateEvent(c *gin.Context) {
	var req models.EventCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start_Datetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start datetime, expected RFC 3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.End_Datetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end datetime, expected RFC 3339"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End datetime must be after start datetime"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	event := models.Event{
		Title:             req.Title,
		Slug:              slug,
		Description:       req.Description,
		Start_Datetime:    start,
		End_Datetime:      end,
		Location:          req.Location,
		Is_Online:         req.Is_Online,
		Livestream_URL:    req.Livestream_URL,
		YouTube_URL:       req.YouTube_URL,
		Facebook_URL:      req.Facebook_URL,
		Zoom_URL:          req.Zoom_URL,
		Registration_Open: true,
	}
	if req.Registration_Open != nil {
		event.Registration_Open = *req.Registration_Open
	}

	insert := initializers.DB.Insert("event").Rows(event).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"event":   event,
	})
}

func UpdateEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req models.EventCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start_Datetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start datetime, expected RFC 3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.End_Datetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end datetime, expected RFC 3339"})
		return
	}

	record := goqu.Record{
		"title":           req.Title,
		"description":     req.Description,
		"start_datetime":  start,
		"end_datetime":    end,
		"location":        req.Location,
		"is_online":       req.Is_Online,
		"livestream_url":  req.Livestream_URL,
		"youtube_url":     req.YouTube_URL,
		"facebook_url":    req.Facebook_URL,
		"zoom_url":        req.Zoom_URL,
		"datetime_update": time.Now(),
	}
	if req.Slug != "" {
		record["slug"] = req.Slug
	}
	if req.Registration_Open != nil {
		record["registration_open"] = *req.Registration_Open
	}

	result, err := initializers.DB.Update("event").
		Set(record).
		Where(goqu.C("event_id").Eq(eventID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully."})
}

func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	result, err := initializers.DB.Delete("event").
		Where(goqu.C("event_id").Eq(eventID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

// GetEventRegistrations lists registrations for one event.
func GetEventRegistrations(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var registrations []models.EventRegistration
	err = initializers.DB.From("event_registration").
		Where(goqu.C("event_id").Eq(eventID)).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&registrations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}

	c.JSON(http.StatusOK, registrations)
}
