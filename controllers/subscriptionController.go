package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/UpliftAfrika/services"
	"github.com/doug-martin/goqu/v9"
)

// Subscribe signs a visitor up for devotion notifications on one channel.
// An already-active subscription is rejected; an inactive one is reactivated
// with the submitted preferences.
func Subscribe(c *gin.Context) {
	var req models.SubscribeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := services.NormalizePhone(req.Phone)

	var contactExpr goqu.Expression
	if req.Channel == models.ChannelEmail {
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required for the email channel"})
			return
		}
		contactExpr = goqu.C("email").Eq(email)
	} else {
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required for SMS and WhatsApp"})
			return
		}
		contactExpr = goqu.C("phone").Eq(phone)
	}

	receiveDaily := true
	if req.ReceiveDailyDevotion != nil {
		receiveDaily = *req.ReceiveDailyDevotion
	}
	receiveSpecial := true
	if req.ReceiveSpecialPrograms != nil {
		receiveSpecial = *req.ReceiveSpecialPrograms
	}

	var existing models.Subscriber
	found, err := initializers.DB.From("subscriber").
		Where(goqu.C("channel").Eq(req.Channel), contactExpr).
		ScanStruct(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if found {
		if existing.Is_Active {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You are already subscribed on this channel"})
			return
		}

		_, err = initializers.DB.Update("subscriber").
			Set(goqu.Record{
				"is_active":                true,
				"receive_daily_devotion":   receiveDaily,
				"receive_special_programs": receiveSpecial,
				"datetime_update":          time.Now(),
			}).
			Where(goqu.C("subscriber_id").Eq(existing.Subscriber_ID)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Welcome back! Your subscription has been reactivated."})
		return
	}

	subscriber := models.Subscriber{
		Email:                    email,
		Phone:                    phone,
		Channel:                  req.Channel,
		Is_Active:                true,
		Receive_Daily_Devotion:   receiveDaily,
		Receive_Special_Programs: receiveSpecial,
	}

	insert := initializers.DB.Insert("subscriber").Rows(subscriber).Executor()
	if _, err := insert.Exec(); err != nil {
		// Unique constraint on (email, phone, channel) catches the race
		// between two concurrent signups for the same contact.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You are already subscribed on this channel"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully. Welcome to Uplift Your Morning!"})
}

// Unsubscribe deactivates every matching subscription. The record is kept so
// resubscribing later reactivates it.
func Unsubscribe(c *gin.Context) {
	var req models.UnsubscribeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := services.NormalizePhone(req.Phone)

	if email == "" && phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide an email or a phone number"})
		return
	}

	var contactExprs []goqu.Expression
	if email != "" {
		contactExprs = append(contactExprs, goqu.C("email").Eq(email))
	}
	if phone != "" {
		contactExprs = append(contactExprs, goqu.C("phone").Eq(phone))
	}

	result, err := initializers.DB.Update("subscriber").
		Set(goqu.Record{"is_active": false, "datetime_update": time.Now()}).
		Where(goqu.C("is_active").IsTrue(), goqu.Or(contactExprs...)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You have been unsubscribed. We're sorry to see you go."})
}

// SetSubscriberActive flips a subscriber's active flag from the staff UI.
func SetSubscriberActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		subscriberID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscriber ID"})
			return
		}

		result, err := initializers.DB.Update("subscriber").
			Set(goqu.Record{"is_active": active, "datetime_update": time.Now()}).
			Where(goqu.C("subscriber_id").Eq(subscriberID)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		affected, _ := result.RowsAffected()
		if affected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}

		message := "Subscriber deactivated."
		if active {
			message = "Subscriber activated."
		}
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// GetSubscribers lists subscribers for the ministry team, optionally
// filtered by channel.
func GetSubscribers(c *gin.Context) {
	var exprs []goqu.Expression

	if channel := c.Query("channel"); channel != "" {
		exprs = append(exprs, goqu.C("channel").Eq(channel))
	}
	if c.Query("active") == "true" {
		exprs = append(exprs, goqu.C("is_active").IsTrue())
	}

	var subscribers []models.Subscriber
	err := initializers.DB.From("subscriber").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&subscribers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}

	c.JSON(http.StatusOK, subscribers)
}
