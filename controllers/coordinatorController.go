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

// SubmitCoordinatorApplication records a campus or professional coordinator
// application and alerts the ministry team.
func SubmitCoordinatorApplication(c *gin.Context) {
	var req models.CoordinatorApplicationCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application := models.CoordinatorApplication{
		Full_Name:   req.Full_Name,
		Email:       req.Email,
		Phone:       services.NormalizePhone(req.Phone),
		Country:     req.Country,
		Track:       req.Track,
		Institution: req.Institution,
		Motivation:  req.Motivation,
		Status:      models.ApplicationStatusPending,
	}

	insert := initializers.DB.Insert("coordinator_application").Rows(application).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfCoordinatorApplication(application)

	c.JSON(http.StatusCreated, gin.H{"message": "Application received. We will be in touch!"})
}

func GetCoordinatorApplications(c *gin.Context) {
	var exprs []goqu.Expression

	if track := c.Query("track"); track != "" {
		exprs = append(exprs, goqu.C("track").Eq(track))
	}
	if status := c.Query("status"); status != "" {
		exprs = append(exprs, goqu.C("status").Eq(status))
	}

	var applications []models.CoordinatorApplication
	err := initializers.DB.From("coordinator_application").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&applications)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, applications)
}

func MarkApplicationReviewed(c *gin.Context) {
	applicationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	result, err := initializers.DB.Update("coordinator_application").
		Set(goqu.Record{"status": models.ApplicationStatusReviewed, "datetime_update": time.Now()}).
		Where(goqu.C("coordinator_application_id").Eq(applicationID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application marked as reviewed."})
}
