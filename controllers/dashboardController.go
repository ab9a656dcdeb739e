package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/doug-martin/goqu/v9"
)

// GetDashboardStats returns the headline numbers for the admin dashboard:
// content counts, pending work, subscriber totals and page view aggregates.
func GetDashboardStats(c *gin.Context) {
	stats := gin.H{}

	counts := []struct {
		key   string
		table string
		where []goqu.Expression
	}{
		{"devotions", "devotion", []goqu.Expression{goqu.C("is_published").IsTrue()}},
		{"upcomingEvents", "event", []goqu.Expression{goqu.C("end_datetime").Gte(time.Now())}},
		{"activeSubscribers", "subscriber", []goqu.Expression{goqu.C("is_active").IsTrue()}},
		{"pendingPrayerRequests", "prayer_request", []goqu.Expression{goqu.C("is_prayed_for").IsFalse()}},
		{"pendingTestimonies", "testimony", []goqu.Expression{goqu.C("is_approved").IsFalse()}},
		{"pendingBookings", "counseling_booking", []goqu.Expression{goqu.C("status").Eq(models.BookingStatusPending)}},
		{"pendingQuestions", "question", []goqu.Expression{goqu.C("status").Eq(models.QuestionStatusPending)}},
		{"pendingApplications", "coordinator_application", []goqu.Expression{goqu.C("status").Eq(models.ApplicationStatusPending)}},
		{"pendingPledges", "pledge", []goqu.Expression{goqu.C("status").Eq(models.PledgeStatusPending)}},
		{"successfulDonations", "donation", []goqu.Expression{goqu.C("status").Eq(models.DonationStatusSuccess)}},
	}

	for _, count := range counts {
		n, err := initializers.DB.From(count.table).Where(count.where...).Count()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
			return
		}
		stats[count.key] = n
	}

	var totalDonated []float64
	err := initializers.DB.From("donation").
		Select(goqu.COALESCE(goqu.SUM("amount_ghs"), 0)).
		Where(goqu.C("status").Eq(models.DonationStatusSuccess)).
		ScanVals(&totalDonated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}
	if len(totalDonated) > 0 {
		stats["totalDonatedGhs"] = totalDonated[0]
	} else {
		stats["totalDonatedGhs"] = 0
	}

	c.JSON(http.StatusOK, stats)
}

// GetPageViewStats returns traffic totals for today, the last week and the
// last month, the most viewed pages, and a daily series for the last week.
func GetPageViewStats(c *gin.Context) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := now.AddDate(0, 0, -7)

	totals := gin.H{}
	for _, window := range []struct {
		key   string
		since time.Time
	}{
		{"today", today},
		{"week", now.AddDate(0, 0, -7)},
		{"month", now.AddDate(0, -1, 0)},
	} {
		n, err := initializers.DB.From("page_view").
			Where(goqu.C("datetime_create").Gte(window.since)).
			Count()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page view stats"})
			return
		}
		totals[window.key] = n
	}

	var topPages []models.PageViewCount
	err := initializers.DB.From("page_view").
		Select(
			goqu.C("path"),
			goqu.C("page_name"),
			goqu.COUNT("*").As("views"),
		).
		Where(goqu.C("datetime_create").Gte(since)).
		GroupBy(goqu.C("path"), goqu.C("page_name")).
		Order(goqu.I("views").Desc()).
		Limit(10).
		ScanStructs(&topPages)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page view stats"})
		return
	}

	var daily []models.DailyViewCount
	err = initializers.DB.From("page_view").
		Select(
			goqu.L("DATE(datetime_create)").As("day"),
			goqu.COUNT("*").As("views"),
		).
		Where(goqu.C("datetime_create").Gte(since)).
		GroupBy(goqu.L("DATE(datetime_create)")).
		Order(goqu.I("day").Asc()).
		ScanStructs(&daily)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page view stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":     totals,
		"topPages":   topPages,
		"dailyViews": daily,
	})
}
