package controllers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/UpliftAfrika/services"
	"github.com/doug-martin/goqu/v9"
)

// StartDonationCheckout initializes a Paystack transaction and records the
// donation as pending under the returned reference.
func StartDonationCheckout(c *gin.Context) {
	var req models.DonationCheckoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paystack := services.GetPaystackService()
	if paystack == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Online donations are temporarily unavailable"})
		return
	}

	amountPesewas := int64(math.Round(req.AmountGHS * 100))
	callbackURL := fmt.Sprintf("%s/donations/verify/", services.SiteURL())

	result, err := paystack.InitializeTransaction(req.Email, amountPesewas, callbackURL, req.Name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start checkout, please try again"})
		return
	}

	donation := models.Donation{
		Name:               req.Name,
		Email:              req.Email,
		Amount_GHS:         req.AmountGHS,
		Paystack_Reference: result.Reference,
		Status:             models.DonationStatusPending,
		Note:               req.Note,
	}

	insert := initializers.DB.Insert("donation").Rows(donation).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authorizationUrl": result.AuthorizationURL,
		"accessCode":       result.AccessCode,
		"reference":        result.Reference,
	})
}

// VerifyDonation resolves a pending donation after Paystack redirects back.
// Failed and reversed transactions are marked failed; anything else that is
// not yet successful stays pending.
func VerifyDonation(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		reference = c.Query("trxref")
	}
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing transaction reference"})
		return
	}

	var donation models.Donation
	found, err := initializers.DB.From("donation").
		Where(goqu.C("paystack_reference").Eq(reference)).
		ScanStruct(&donation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if found && donation.Status == models.DonationStatusSuccess {
		c.JSON(http.StatusOK, gin.H{"status": donation.Status, "message": "Thank you for your donation!"})
		return
	}

	paystack := services.GetPaystackService()
	if paystack == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Verification is temporarily unavailable"})
		return
	}

	result, err := paystack.VerifyTransaction(reference)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to verify transaction, please try again"})
		return
	}

	status := models.DonationStatusPending
	if found {
		status = donation.Status
	}
	switch result.Status {
	case "success":
		status = models.DonationStatusSuccess
	case "failed", "reversed", "insufficient_funds":
		status = models.DonationStatusFailed
	}

	// A reference with no local record still gets verified; there is just
	// nothing to update. The gateway response is kept on every verify.
	if found {
		_, err = initializers.DB.Update("donation").
			Set(goqu.Record{
				"status":          status,
				"raw_response":    result.Raw,
				"datetime_update": time.Now(),
			}).
			Where(goqu.C("donation_id").Eq(donation.Donation_ID)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	message := "Your donation is still processing."
	if status == models.DonationStatusSuccess {
		message = "Thank you for your donation!"
	} else if status == models.DonationStatusFailed {
		message = "The transaction was not successful."
	}

	c.JSON(http.StatusOK, gin.H{"status": status, "message": message})
}

// GetDonation returns one donation for the ministry team.
func GetDonation(c *gin.Context) {
	donationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var donation models.Donation
	found, err := initializers.DB.From("donation").
		Where(goqu.C("donation_id").Eq(donationID)).
		ScanStruct(&donation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	c.JSON(http.StatusOK, donation)
}

// GetDonations lists donations for the ministry team.
func GetDonations(c *gin.Context) {
	var exprs []goqu.Expression

	if status := c.Query("status"); status != "" {
		exprs = append(exprs, goqu.C("status").Eq(status))
	}

	var donations []models.Donation
	err := initializers.DB.From("donation").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&donations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	c.JSON(http.StatusOK, donations)
}
