package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/controllers"
	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/middlewares"
	"github.com/UpliftAfrika/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
	services.InitSMSService()
	services.InitWhatsAppService()
	services.InitPaystackService()
	services.InitCalendarService()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.Use(middlewares.TrackPageViews)

	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserLogin)

	// devotions
	router.GET("/devotions", controllers.GetDevotions)
	router.GET("/devotions/today", controllers.GetTodaysDevotion)
	router.GET("/devotions/series", controllers.GetDevotionSeries)
	router.GET("/devotions/:slug", controllers.GetDevotionBySlug)

	// events
	router.GET("/events", controllers.GetUpcomingEvents)
	router.GET("/events/past", controllers.GetPastEvents)
	router.GET("/events/:slug", controllers.GetEventBySlug)
	router.POST("/events/:slug/register", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.RegisterForEvent)

	// resources
	router.GET("/resources", controllers.GetResources)
	router.GET("/resources/categories", controllers.GetResourceCategories)
	router.GET("/resources/:slug", controllers.GetResourceBySlug)
	router.GET("/resources/:slug/download", controllers.DownloadResource)

	// community
	router.POST("/community/prayer-requests", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitPrayerRequest)
	router.GET("/community/prayer-requests", controllers.GetPublicPrayerRequests)
	router.POST("/community/testimonies", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitTestimony)
	router.GET("/community/testimonies", controllers.GetApprovedTestimonies)
	router.POST("/community/questions", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitQuestion)
	router.GET("/community/questions", controllers.GetAnsweredQuestions)
	router.POST("/contact", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitContactMessage)

	// subscriptions
	router.POST("/subscriptions/subscribe", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Subscribe)
	router.POST("/subscriptions/unsubscribe", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Unsubscribe)

	// donations
	router.POST("/donations/checkout", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.StartDonationCheckout)
	router.GET("/donations/verify", controllers.VerifyDonation)

	// counseling and involvement
	router.POST("/counseling/bookings", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.CreateCounselingBooking)
	router.POST("/pledges", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.CreatePledge)
	router.POST("/coordinators/apply", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitCoordinatorApplication)

	// site settings
	router.GET("/settings", controllers.GetSiteSettings)

	// staff routes
	auth := router.Group("/manage")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		auth.GET("/me", controllers.GetUserProfile)

		admin := auth.Group("/")
		admin.Use(middlewares.CheckAdmin)
		{
			admin.POST("/users", controllers.UserSignup)

			// devotions
			admin.POST("/devotions", controllers.CreateDevotion)
			admin.PATCH("/devotions/:id", controllers.UpdateDevotion)
			admin.DELETE("/devotions/:id", controllers.DeleteDevotion)
			admin.POST("/devotions/series", controllers.CreateDevotionSeries)
			admin.PATCH("/devotions/series/:id", controllers.UpdateDevotionSeries)

			// events
			admin.POST("/events", controllers.CreateEvent)
			admin.PATCH("/events/:id", controllers.UpdateEvent)
			admin.DELETE("/events/:id", controllers.DeleteEvent)
			admin.GET("/events/:id/registrations", controllers.GetEventRegistrations)

			// resources
			admin.POST("/resources", controllers.CreateResource)
			admin.PATCH("/resources/:id", controllers.UpdateResource)
			admin.DELETE("/resources/:id", controllers.DeleteResource)
			admin.POST("/resources/categories", controllers.CreateResourceCategory)

			// community moderation
			admin.GET("/prayer-requests", controllers.GetAllPrayerRequests)
			admin.POST("/prayer-requests/:id/prayed", controllers.MarkPrayerRequestPrayedFor)
			admin.DELETE("/prayer-requests/:id", controllers.DeletePrayerRequest)
			admin.GET("/testimonies", controllers.GetAllTestimonies)
			admin.POST("/testimonies/:id/approve", controllers.ApproveTestimony)
			admin.DELETE("/testimonies/:id", controllers.DeleteTestimony)
			admin.GET("/questions", controllers.GetAllQuestions)
			admin.POST("/questions/:id/answer", controllers.AnswerQuestion)
			admin.GET("/contact-messages", controllers.GetContactMessages)

			// subscribers
			admin.GET("/subscribers", controllers.GetSubscribers)
			admin.POST("/subscribers/:id/activate", controllers.SetSubscriberActive(true))
			admin.POST("/subscribers/:id/deactivate", controllers.SetSubscriberActive(false))

			// donations and pledges
			admin.GET("/donations", controllers.GetDonations)
			admin.GET("/donations/:id", controllers.GetDonation)
			admin.GET("/pledges", controllers.GetPledges)
			admin.PATCH("/pledges/:id", controllers.UpdatePledgeStatus)

			// counseling
			admin.GET("/counseling", controllers.GetCounselingBookings)
			admin.POST("/counseling/:id/approve", controllers.ApproveCounselingBooking)
			admin.POST("/counseling/:id/complete", controllers.CompleteCounselingBooking)
			admin.POST("/counseling/:id/cancel", controllers.CancelCounselingBooking)

			// coordinator applications
			admin.GET("/coordinators", controllers.GetCoordinatorApplications)
			admin.POST("/coordinators/:id/reviewed", controllers.MarkApplicationReviewed)

			// scheduled notifications
			admin.GET("/notifications", controllers.GetScheduledNotifications)
			admin.POST("/notifications", controllers.CreateScheduledNotification)
			admin.GET("/notifications/:id", controllers.GetScheduledNotification)
			admin.POST("/notifications/:id/pause", controllers.PauseScheduledNotification)
			admin.POST("/notifications/:id/resume", controllers.ResumeScheduledNotification)
			admin.POST("/notifications/:id/cancel", controllers.CancelScheduledNotification)
			admin.POST("/notifications/:id/send", controllers.SendScheduledNotificationNow)

			// dashboard and settings
			admin.GET("/dashboard", controllers.GetDashboardStats)
			admin.GET("/dashboard/page-views", controllers.GetPageViewStats)
			admin.PATCH("/settings", controllers.UpdateSiteSettings)
		}
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
