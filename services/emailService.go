package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/UpliftAfrika/models"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SendDevotionEmail sends a rendered daily devotion to a subscriber.
func (s *EmailService) SendDevotionEmail(toEmail string, subject string, textBody string, htmlBody string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	params := &resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send devotion email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent devotion email to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}

// SendAdminAlert notifies the ministry team about a new submission
// (prayer request, testimony, booking, pledge, question, application).
func (s *EmailService) SendAdminAlert(subject string, body string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	adminEmail := os.Getenv("ADMIN_NOTIFICATION_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_NOTIFICATION_EMAIL not set")
	}

	params := &resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{adminEmail},
		Subject: subject,
		Text:    body,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send admin alert %q: %v", subject, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent admin alert %q. Email ID: %s", subject, sent.Id)
	return nil
}

// SendBookingApprovalEmail tells a user their counseling session was approved.
func (s *EmailService) SendBookingApprovalEmail(booking models.CounselingBooking) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}
	if booking.Email == "" {
		return fmt.Errorf("booking has no email address")
	}
	if booking.Approved_Date == nil || booking.Approved_Time == nil {
		return fmt.Errorf("booking must have an approved date and time")
	}

	topic := booking.Topic
	if topic == "" {
		topic = "General Counseling"
	}

	approvedDate := booking.Approved_Date.Format("January 2, 2006")

	textBody := fmt.Sprintf(`
Dear %s,

Your counseling session request has been approved!

Session Details:
- Date: %s
- Time: %s
- Duration: %d minutes
- Topic: %s

Please make sure to be available at the scheduled time. If you need to reschedule or have any questions, please contact us.

We look forward to meeting with you.

Blessings,
Uplift Your Morning Team
`, booking.Full_Name, approvedDate, *booking.Approved_Time, booking.Duration_Minutes, topic)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #d4a017;
        }
        .header h1 {
            color: #d4a017;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .details {
            background-color: #f5f5f5;
            border: 1px solid #d4a017;
            border-radius: 8px;
            padding: 20px;
            margin: 20px 0;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Uplift Your Morning</h1>
    </div>

    <div class="content">
        <h2>Your Counseling Session Has Been Approved</h2>

        <p>Dear %s,</p>

        <p>Your counseling session request has been approved!</p>

        <div class="details">
            <p><strong>Date:</strong> %s</p>
            <p><strong>Time:</strong> %s</p>
            <p><strong>Duration:</strong> %d minutes</p>
            <p><strong>Topic:</strong> %s</p>
        </div>

        <p>Please make sure to be available at the scheduled time. If you need to reschedule or have any questions, please contact us.</p>

        <p>We look forward to meeting with you.</p>

        <p>Blessings,<br>Uplift Your Morning Team</p>
    </div>

    <div class="footer">
        <p>Start Your Day Right. Uplift Your Morning.</p>
    </div>
</body>
</html>
`, booking.Full_Name, approvedDate, *booking.Approved_Time, booking.Duration_Minutes, topic)

	params := &resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{booking.Email},
		Subject: "Your Counseling Session Has Been Approved - Uplift Your Morning",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send booking approval email to %s: %v", booking.Email, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent booking approval email to %s. Email ID: %s", booking.Email, sent.Id)
	return nil
}

func fromAddress() string {
	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@upliftyourmorning.com"
	}
	return from
}
