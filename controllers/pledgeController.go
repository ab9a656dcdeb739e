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

// CreatePledge records a monetary or non-monetary pledge and alerts the
// ministry team.
func CreatePledge(c *gin.Context) {
	var req models.PledgeCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pledgeType := req.Pledge_Type
	if pledgeType == "" {
		pledgeType = models.PledgeTypeMonetary
	}

	if pledgeType == models.PledgeTypeMonetary {
		if req.Amount == nil || *req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A monetary pledge needs a positive amount"})
			return
		}
	} else if req.Non_Monetary_Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A non-monetary pledge needs a description"})
		return
	}

	pledge := models.Pledge{
		Full_Name:                req.Full_Name,
		Email:                    req.Email,
		Phone:                    services.NormalizePhone(req.Phone),
		Pledge_Type:              pledgeType,
		Amount:                   req.Amount,
		Non_Monetary_Description: req.Non_Monetary_Description,
		Status:                   models.PledgeStatusPending,
	}

	insert := initializers.DB.Insert("pledge").Rows(pledge).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfPledge(pledge)

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your pledge!"})
}

func GetPledges(c *gin.Context) {
	var exprs []goqu.Expression

	if status := c.Query("status"); status != "" {
		exprs = append(exprs, goqu.C("status").Eq(status))
	}

	var pledges []models.Pledge
	err := initializers.DB.From("pledge").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&pledges)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pledges"})
		return
	}

	c.JSON(http.StatusOK, pledges)
}

// UpdatePledgeStatus marks a pledge fulfilled or cancelled.
func UpdatePledgeStatus(c *gin.Context) {
	pledgeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pledge ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=pending fulfilled cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Update("pledge").
		Set(goqu.Record{"status": req.Status, "datetime_update": time.Now()}).
		Where(goqu.C("pledge_id").Eq(pledgeID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pledge updated."})
}
