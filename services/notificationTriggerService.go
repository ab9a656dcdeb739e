package services

import (
	"fmt"
	"log"

	"github.com/UpliftAfrika/models"
)

// Admin alert triggers for new public submissions. Failures are logged and
// never surfaced to the submitting visitor.

func NotifyAdminOfPrayerRequest(request models.PrayerRequest) {
	name := request.Name
	if name == "" {
		name = "Anonymous"
	}

	subject := "New Prayer Request"
	body := fmt.Sprintf("A new prayer request has been submitted.\n\nFrom: %s\n\n%s",
		name, request.Request)

	sendAdminAlert(subject, body)
}

func NotifyAdminOfTestimony(testimony models.Testimony) {
	name := testimony.Name
	if name == "" {
		name = "Anonymous"
	}

	subject := "New Testimony Submitted"
	body := fmt.Sprintf("A new testimony is awaiting review.\n\nFrom: %s\nCountry: %s\n\n%s",
		name, testimony.Country, testimony.Testimony)

	sendAdminAlert(subject, body)
}

func NotifyAdminOfBooking(booking models.CounselingBooking) {
	topic := booking.Topic
	if topic == "" {
		topic = "General Counseling"
	}

	subject := "New Counseling Booking Request"
	body := fmt.Sprintf("A new counseling booking has been requested.\n\nName: %s\nPhone: %s\nEmail: %s\nTopic: %s\nPreferred date: %s\nPreferred time: %s\n\n%s",
		booking.Full_Name, booking.Phone, booking.Email, topic,
		booking.Preferred_Date.Format("2006-01-02"), booking.Preferred_Time, booking.Message)

	sendAdminAlert(subject, body)
}

func NotifyAdminOfPledge(pledge models.Pledge) {
	detail := pledge.Non_Monetary_Description
	if pledge.Pledge_Type == models.PledgeTypeMonetary && pledge.Amount != nil {
		detail = fmt.Sprintf("GHS %.2f", *pledge.Amount)
	}

	subject := "New Pledge Received"
	body := fmt.Sprintf("A new pledge has been submitted.\n\nName: %s\nPhone: %s\nType: %s\nPledge: %s",
		pledge.Full_Name, pledge.Phone, pledge.Pledge_Type, detail)

	sendAdminAlert(subject, body)
}

func NotifyAdminOfQuestion(question models.Question) {
	name := question.Name
	if name == "" {
		name = "Anonymous"
	}

	subject := "New Question Submitted"
	body := fmt.Sprintf("A new question has been submitted.\n\nFrom: %s\nTopic: %s\n\n%s",
		name, question.Topic, question.Question)

	sendAdminAlert(subject, body)
}

func NotifyAdminOfCoordinatorApplication(application models.CoordinatorApplication) {
	subject := "New Coordinator Application"
	body := fmt.Sprintf("A new coordinator application has been received.\n\nName: %s\nPhone: %s\nEmail: %s\nTrack: %s\nCountry: %s\nInstitution: %s\n\n%s",
		application.Full_Name, application.Phone, application.Email,
		application.Track, application.Country, application.Institution, application.Motivation)

	sendAdminAlert(subject, body)
}

func NotifyAdminOfContactMessage(message models.ContactMessage) {
	subject := "New Contact Message"
	body := fmt.Sprintf("A new contact message has been received.\n\nFrom: %s\nEmail: %s\nSubject: %s\n\n%s",
		message.Name, message.Email, message.Subject, message.Message)

	sendAdminAlert(subject, body)
}

func sendAdminAlert(subject string, body string) {
	if err := GetEmailService().SendAdminAlert(subject, body); err != nil {
		log.Printf("Admin alert %q failed: %v", subject, err)
	}
}
