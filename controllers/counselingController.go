package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/UpliftAfrika/services"
	"github.com/doug-martin/goqu/v9"
)

// CreateCounselingBooking records a public booking request and alerts the
// counseling team.
func CreateCounselingBooking(c *gin.Context) {
	var req models.CounselingBookingCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preferredDate, err := time.Parse("2006-01-02", req.Preferred_Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferred date, expected YYYY-MM-DD"})
		return
	}
	if preferredDate.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preferred date cannot be in the past"})
		return
	}
	if _, err := time.Parse("15:04", req.Preferred_Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferred time, expected HH:MM"})
		return
	}

	booking := models.CounselingBooking{
		Full_Name:        req.Full_Name,
		Email:            req.Email,
		Phone:            services.NormalizePhone(req.Phone),
		Country:          req.Country,
		Preferred_Date:   preferredDate,
		Preferred_Time:   req.Preferred_Time,
		Duration_Minutes: 30,
		Topic:            req.Topic,
		Message:          req.Message,
		Status:           models.BookingStatusPending,
	}

	insert := initializers.DB.Insert("counseling_booking").Rows(booking).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfBooking(booking)

	c.JSON(http.StatusCreated, gin.H{"message": "Booking request received. We will confirm a time with you shortly."})
}

func GetCounselingBookings(c *gin.Context) {
	var exprs []goqu.Expression

	if status := c.Query("status"); status != "" {
		exprs = append(exprs, goqu.C("status").Eq(status))
	}

	var bookings []models.CounselingBooking
	err := initializers.DB.From("counseling_booking").
		Where(exprs...).
		Order(goqu.I("preferred_date").Asc(), goqu.I("preferred_time").Asc()).
		ScanStructs(&bookings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ApproveCounselingBooking confirms a session time and notifies the
// requester by email and SMS. A calendar event is created when the calendar
// integration is on. Notification failures do not roll back the approval.
func ApproveCounselingBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req models.CounselingBookingApprove
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approvedDate, err := time.Parse("2006-01-02", req.Approved_Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approved date, expected YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", req.Approved_Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approved time, expected HH:MM"})
		return
	}

	var booking models.CounselingBooking
	found, err := initializers.DB.From("counseling_booking").
		Where(goqu.C("counseling_booking_id").Eq(bookingID)).
		ScanStruct(&booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.Status != models.BookingStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Booking is already %s", booking.Status)})
		return
	}

	booking.Status = models.BookingStatusApproved
	booking.Approved_Date = &approvedDate
	booking.Approved_Time = &req.Approved_Time

	emailSent := false
	if booking.Email != "" {
		if err := services.GetEmailService().SendBookingApprovalEmail(booking); err != nil {
			log.Printf("Approval email for booking %d failed: %v", bookingID, err)
		} else {
			emailSent = true
		}
	}

	smsSent := false
	smsBody := fmt.Sprintf("Your counseling session with Uplift Your Morning has been approved for %s at %s. We look forward to meeting you.",
		approvedDate.Format("Jan 2, 2006"), req.Approved_Time)
	if _, err := services.GetSMSService().SendSMS(booking.Phone, smsBody); err != nil {
		log.Printf("Approval SMS for booking %d failed: %v", bookingID, err)
	} else {
		smsSent = true
	}

	calendarEventID := ""
	if calendar := services.GetCalendarService(); calendar != nil {
		eventID, err := calendar.CreateBookingEvent(booking)
		if err != nil {
			log.Printf("Calendar event for booking %d failed: %v", bookingID, err)
		} else {
			calendarEventID = eventID
		}
	}

	_, err = initializers.DB.Update("counseling_booking").
		Set(goqu.Record{
			"status":            models.BookingStatusApproved,
			"approved_date":     approvedDate,
			"approved_time":     req.Approved_Time,
			"email_sent":        emailSent,
			"sms_sent":          smsSent,
			"calendar_event_id": calendarEventID,
			"datetime_update":   time.Now(),
		}).
		Where(goqu.C("counseling_booking_id").Eq(bookingID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Booking approved.",
		"emailSent": emailSent,
		"smsSent":   smsSent,
	})
}

func CompleteCounselingBooking(c *gin.Context) {
	updateBookingStatus(c, models.BookingStatusApproved, models.BookingStatusCompleted, "Booking marked as completed.")
}

func CancelCounselingBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	result, err := initializers.DB.Update("counseling_booking").
		Set(goqu.Record{"status": models.BookingStatusCancelled, "datetime_update": time.Now()}).
		Where(
			goqu.C("counseling_booking_id").Eq(bookingID),
			goqu.C("status").In(models.BookingStatusPending, models.BookingStatusApproved),
		).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending or approved booking with this ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled."})
}

func updateBookingStatus(c *gin.Context, fromStatus string, toStatus string, message string) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	result, err := initializers.DB.Update("counseling_booking").
		Set(goqu.Record{"status": toStatus, "datetime_update": time.Now()}).
		Where(
			goqu.C("counseling_booking_id").Eq(bookingID),
			goqu.C("status").Eq(fromStatus),
		).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No %s booking with this ID", fromStatus)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
