package services

import (
	"fmt"
	"log"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
)

// DispatchResult accumulates per-channel delivery counts for one send run.
type DispatchResult struct {
	EmailSent      int `json:"emailSent"`
	EmailFailed    int `json:"emailFailed"`
	SMSSent        int `json:"smsSent"`
	SMSFailed      int `json:"smsFailed"`
	WhatsAppSent   int `json:"whatsappSent"`
	WhatsAppFailed int `json:"whatsappFailed"`
	DryRun         bool
}

func (r DispatchResult) TotalSent() int {
	return r.EmailSent + r.SMSSent + r.WhatsAppSent
}

func (r DispatchResult) TotalFailed() int {
	return r.EmailFailed + r.SMSFailed + r.WhatsAppFailed
}

// DevotionForDate returns the published devotion for the given calendar day,
// or nil when none exists.
func DevotionForDate(date time.Time) (*models.Devotion, error) {
	var devotion models.Devotion

	found, err := initializers.DB.From("devotion").
		Where(goqu.Ex{
			"publish_date": date.Format("2006-01-02"),
			"is_published": true,
		}).
		ScanStruct(&devotion)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &devotion, nil
}

// ActiveSubscribers returns active subscribers on a channel who opted into
// the given audience and have a usable contact for that channel.
func ActiveSubscribers(channel string, audience string) ([]models.Subscriber, error) {
	exprs := []goqu.Expression{
		goqu.Ex{"channel": channel, "is_active": true},
	}

	switch audience {
	case models.AudienceSpecialPrograms:
		exprs = append(exprs, goqu.Ex{"receive_special_programs": true})
	default:
		exprs = append(exprs, goqu.Ex{"receive_daily_devotion": true})
	}

	if channel == models.ChannelEmail {
		exprs = append(exprs, goqu.C("email").Neq(""))
	} else {
		exprs = append(exprs, goqu.C("phone").Neq(""))
	}

	var subscribers []models.Subscriber
	err := initializers.DB.From("subscriber").
		Where(exprs...).
		Order(goqu.I("subscriber_id").Asc()).
		ScanStructs(&subscribers)
	if err != nil {
		return nil, err
	}

	return subscribers, nil
}

// SendDailyDevotions delivers today's devotion to every opted-in subscriber
// across all three channels. With dryRun the recipient lists are resolved and
// counted but nothing is sent. With force a fallback message goes out even
// when no devotion is published for today.
func SendDailyDevotions(dryRun bool, force bool) (*DispatchResult, error) {
	devotion, err := DevotionForDate(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load today's devotion: %v", err)
	}
	if devotion == nil && !force {
		return nil, fmt.Errorf("no published devotion for today")
	}

	result := &DispatchResult{DryRun: dryRun}

	if err := dispatchEmail(devotion, models.AudienceDailyDevotion, "", result); err != nil {
		return result, err
	}
	if err := dispatchSMS(devotion, models.AudienceDailyDevotion, "", result); err != nil {
		return result, err
	}
	if err := dispatchWhatsApp(devotion, models.AudienceDailyDevotion, "", result); err != nil {
		return result, err
	}

	log.Printf("Daily devotion dispatch complete: %d sent, %d failed (dry run: %t)",
		result.TotalSent(), result.TotalFailed(), dryRun)

	return result, nil
}

// DispatchScheduledNotification sends one scheduled notification over each of
// its enabled channels and persists the outcome. The notification must be in
// the scheduled status; paused, sent and cancelled records are left alone.
func DispatchScheduledNotification(notification models.ScheduledNotification) (*DispatchResult, error) {
	if notification.Status != models.NotificationStatusScheduled {
		return nil, fmt.Errorf("notification %d is %s, not scheduled", notification.Notification_ID, notification.Status)
	}

	var devotion *models.Devotion
	var err error

	if notification.Notification_Type == models.NotificationTypeDailyDevotion {
		if notification.Devotion_ID != nil {
			devotion, err = devotionByID(*notification.Devotion_ID)
		} else {
			devotion, err = DevotionForDate(notification.Scheduled_Date)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load devotion for notification %d: %v", notification.Notification_ID, err)
		}
	}

	// Custom and special program notifications carry their own message.
	customMessage := ""
	if devotion == nil {
		customMessage = notification.Message
	}

	result := &DispatchResult{}

	if notification.Send_Email {
		if err := dispatchEmail(devotion, notification.Audience, customMessage, result); err != nil {
			return result, err
		}
	}
	if notification.Send_SMS {
		if err := dispatchSMS(devotion, notification.Audience, customMessage, result); err != nil {
			return result, err
		}
	}
	if notification.Send_WhatsApp {
		if err := dispatchWhatsApp(devotion, notification.Audience, customMessage, result); err != nil {
			return result, err
		}
	}

	now := time.Now()
	_, err = initializers.DB.Update("scheduled_notification").
		Set(goqu.Record{
			"status":                 models.NotificationStatusSent,
			"email_sent_count":       result.EmailSent,
			"email_failed_count":     result.EmailFailed,
			"sms_sent_count":         result.SMSSent,
			"sms_failed_count":       result.SMSFailed,
			"whatsapp_sent_count":    result.WhatsAppSent,
			"whatsapp_failed_count":  result.WhatsAppFailed,
			"sent_at":                now,
			"datetime_update":        now,
		}).
		Where(goqu.Ex{"scheduled_notification_id": notification.Notification_ID}).
		Executor().Exec()
	if err != nil {
		return result, fmt.Errorf("failed to record dispatch outcome for notification %d: %v", notification.Notification_ID, err)
	}

	log.Printf("Notification %d dispatched: %d sent, %d failed",
		notification.Notification_ID, result.TotalSent(), result.TotalFailed())

	return result, nil
}

// ProcessScheduledNotifications dispatches every notification that is due.
// Returns the number of notifications processed. A failure on one
// notification does not stop the rest.
func ProcessScheduledNotifications() (int, error) {
	var due []models.ScheduledNotification

	err := initializers.DB.From("scheduled_notification").
		Where(
			goqu.Ex{"status": models.NotificationStatusScheduled},
			goqu.C("scheduled_date").Lte(time.Now()),
		).
		Order(goqu.I("scheduled_date").Asc()).
		ScanStructs(&due)
	if err != nil {
		return 0, fmt.Errorf("failed to load due notifications: %v", err)
	}

	processed := 0
	for _, notification := range due {
		if _, err := DispatchScheduledNotification(notification); err != nil {
			log.Printf("Failed to dispatch notification %d: %v", notification.Notification_ID, err)
			continue
		}
		processed++
	}

	return processed, nil
}

func devotionByID(devotionID int) (*models.Devotion, error) {
	var devotion models.Devotion

	found, err := initializers.DB.From("devotion").
		Where(goqu.Ex{"devotion_id": devotionID}).
		ScanStruct(&devotion)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("devotion %d not found", devotionID)
	}

	return &devotion, nil
}

func dispatchEmail(devotion *models.Devotion, audience string, customMessage string, result *DispatchResult) error {
	subscribers, err := ActiveSubscribers(models.ChannelEmail, audience)
	if err != nil {
		return fmt.Errorf("failed to load email subscribers: %v", err)
	}

	var subject, textBody, htmlBody string
	if devotion != nil {
		subject, textBody, htmlBody = BuildDevotionEmail(*devotion)
	} else if customMessage != "" {
		subject = "Uplift Your Morning"
		textBody = customMessage
		htmlBody = ""
	} else {
		subject, textBody = BuildNoDevotionEmail()
		htmlBody = ""
	}

	for _, subscriber := range subscribers {
		if result.DryRun {
			result.EmailSent++
			continue
		}
		if err := GetEmailService().SendDevotionEmail(subscriber.Email, subject, textBody, htmlBody); err != nil {
			log.Printf("Email to %s failed: %v", subscriber.Email, err)
			result.EmailFailed++
			continue
		}
		result.EmailSent++
	}

	return nil
}

func dispatchSMS(devotion *models.Devotion, audience string, customMessage string, result *DispatchResult) error {
	subscribers, err := ActiveSubscribers(models.ChannelSMS, audience)
	if err != nil {
		return fmt.Errorf("failed to load SMS subscribers: %v", err)
	}

	var message string
	if devotion != nil {
		message = BuildDevotionSMS(*devotion)
	} else if customMessage != "" {
		message = TruncateForChannel(customMessage, SMSMaxLength)
	} else {
		message = fmt.Sprintf("Uplift Your Morning: no devotion today, but we're thinking of you! Visit %s/devotions/", SiteURL())
	}

	for _, subscriber := range subscribers {
		if result.DryRun {
			result.SMSSent++
			continue
		}
		if _, err := GetSMSService().SendSMS(subscriber.Phone, message); err != nil {
			log.Printf("SMS to %s failed: %v", subscriber.Phone, err)
			result.SMSFailed++
			continue
		}
		result.SMSSent++
	}

	return nil
}

func dispatchWhatsApp(devotion *models.Devotion, audience string, customMessage string, result *DispatchResult) error {
	subscribers, err := ActiveSubscribers(models.ChannelWhatsApp, audience)
	if err != nil {
		return fmt.Errorf("failed to load WhatsApp subscribers: %v", err)
	}

	var message string
	if devotion != nil {
		message = BuildDevotionWhatsApp(*devotion)
	} else if customMessage != "" {
		message = TruncateForChannel(customMessage, WhatsAppMaxLength)
	} else {
		message = fmt.Sprintf("Good morning! We don't have a devotion published today, but we're thinking of you. Visit %s/devotions/ for past devotions.", SiteURL())
	}

	for _, subscriber := range subscribers {
		if result.DryRun {
			result.WhatsAppSent++
			continue
		}
		if _, err := GetWhatsAppService().SendWhatsApp(subscriber.Phone, message); err != nil {
			log.Printf("WhatsApp to %s failed: %v", subscriber.Phone, err)
			result.WhatsAppFailed++
			continue
		}
		result.WhatsAppSent++
	}

	return nil
}
