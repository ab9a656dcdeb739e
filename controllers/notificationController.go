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

func GetScheduledNotifications(c *gin.Context) {
	var exprs []goqu.Expression

	if status := c.Query("status"); status != "" {
		exprs = append(exprs, goqu.C("status").Eq(status))
	}

	var notifications []models.ScheduledNotification
	err := initializers.DB.From("scheduled_notification").
		Where(exprs...).
		Order(goqu.I("scheduled_date").Desc()).
		ScanStructs(&notifications)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func GetScheduledNotification(c *gin.Context) {
	notification, ok := loadNotification(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, notification)
}

// CreateScheduledNotification schedules a future send. A daily devotion
// notification may pin a specific devotion; otherwise the devotion published
// on the scheduled date is used at send time.
func CreateScheduledNotification(c *gin.Context) {
	var req models.ScheduledNotificationCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduledDate, err := time.Parse(time.RFC3339, req.Scheduled_Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduled date, expected RFC 3339"})
		return
	}

	if !req.Send_Email && !req.Send_SMS && !req.Send_WhatsApp {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enable at least one channel"})
		return
	}

	if req.Notification_Type != models.NotificationTypeDailyDevotion && req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A message is required for this notification type"})
		return
	}

	if req.Devotion_ID != nil {
		count, err := initializers.DB.From("devotion").
			Where(goqu.C("devotion_id").Eq(*req.Devotion_ID)).
			Count()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Devotion not found"})
			return
		}
	}

	currentUser := c.MustGet("currentUser").(models.UserProfile)

	notification := models.ScheduledNotification{
		Title:             req.Title,
		Message:           req.Message,
		Notification_Type: req.Notification_Type,
		Audience:          req.Audience,
		Devotion_ID:       req.Devotion_ID,
		Scheduled_Date:    scheduledDate,
		Send_Email:        req.Send_Email,
		Send_SMS:          req.Send_SMS,
		Send_WhatsApp:     req.Send_WhatsApp,
		Status:            models.NotificationStatusScheduled,
		Created_By:        currentUser.User_Profile_ID,
		Updated_By:        currentUser.User_Profile_ID,
	}

	insert := initializers.DB.Insert("scheduled_notification").Rows(notification).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification scheduled.",
		"notification": notification,
	})
}

// PauseScheduledNotification takes a scheduled notification out of the
// dispatch queue without losing it.
func PauseScheduledNotification(c *gin.Context) {
	transitionNotification(c, models.NotificationStatusScheduled, models.NotificationStatusPaused, "Notification paused.")
}

// ResumeScheduledNotification puts a paused notification back in the queue.
func ResumeScheduledNotification(c *gin.Context) {
	transitionNotification(c, models.NotificationStatusPaused, models.NotificationStatusScheduled, "Notification resumed.")
}

// CancelScheduledNotification permanently cancels a scheduled or paused
// notification. Sent notifications cannot be cancelled.
func CancelScheduledNotification(c *gin.Context) {
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	currentUser := c.MustGet("currentUser").(models.UserProfile)

	result, err := initializers.DB.Update("scheduled_notification").
		Set(goqu.Record{
			"status":          models.NotificationStatusCancelled,
			"updated_by":      currentUser.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(
			goqu.C("scheduled_notification_id").Eq(notificationID),
			goqu.C("status").In(models.NotificationStatusScheduled, models.NotificationStatusPaused),
		).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No scheduled or paused notification with this ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification cancelled."})
}

// SendScheduledNotificationNow dispatches a scheduled notification
// immediately instead of waiting for its scheduled time.
func SendScheduledNotificationNow(c *gin.Context) {
	notification, ok := loadNotification(c)
	if !ok {
		return
	}

	if notification.Status != models.NotificationStatusScheduled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only scheduled notifications can be sent"})
		return
	}

	result, err := services.DispatchScheduledNotification(notification)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification sent.",
		"result":  result,
	})
}

func loadNotification(c *gin.Context) (models.ScheduledNotification, bool) {
	var notification models.ScheduledNotification

	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return notification, false
	}

	found, err := initializers.DB.From("scheduled_notification").
		Where(goqu.C("scheduled_notification_id").Eq(notificationID)).
		ScanStruct(&notification)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return notification, false
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return notification, false
	}

	return notification, true
}

func transitionNotification(c *gin.Context, fromStatus string, toStatus string, message string) {
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	currentUser := c.MustGet("currentUser").(models.UserProfile)

	result, err := initializers.DB.Update("scheduled_notification").
		Set(goqu.Record{
			"status":          toStatus,
			"updated_by":      currentUser.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(
			goqu.C("scheduled_notification_id").Eq(notificationID),
			goqu.C("status").Eq(fromStatus),
		).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No " + fromStatus + " notification with this ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
