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

// SubmitQuestion records a public question and alerts the ministry team.
func SubmitQuestion(c *gin.Context) {
	var req models.QuestionCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question := models.Question{
		Name:     req.Name,
		Email:    req.Email,
		Topic:    req.Topic,
		Question: req.Question,
		Status:   models.QuestionStatusPending,
	}

	insert := initializers.DB.Insert("question").Rows(question).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.NotifyAdminOfQuestion(question)

	c.JSON(http.StatusCreated, gin.H{"message": "Question submitted. We'll answer as soon as we can."})
}

// GetAnsweredQuestions lists answered questions for the public Q&A page.
func GetAnsweredQuestions(c *gin.Context) {
	var questions []models.Question

	err := initializers.DB.From("question").
		Where(goqu.C("status").Eq(models.QuestionStatusAnswered)).
		Order(goqu.I("datetime_update").Desc()).
		Limit(50).
		ScanStructs(&questions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

func GetAllQuestions(c *gin.Context) {
	var exprs []goqu.Expression

	if status := c.Query("status"); status != "" {
		exprs = append(exprs, goqu.C("status").Eq(status))
	}

	var questions []models.Question
	err := initializers.DB.From("question").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&questions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// AnswerQuestion stores the team's answer and marks the question answered.
func AnswerQuestion(c *gin.Context) {
	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var req models.QuestionAnswer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Update("question").
		Set(goqu.Record{
			"answer":          req.Answer,
			"status":          models.QuestionStatusAnswered,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("question_id").Eq(questionID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Answer saved."})
}
