package controllers

import (
	"net/http"

	"trimspire/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SaveQuizInput struct {
	Email   string         `json:"email" binding:"required,email"`
	Answers map[string]any `json:"answers" binding:"required"`
}

type QuizController struct {
	quiz *services.QuizService
	log  *zap.Logger
}

func NewQuizController(quiz *services.QuizService, log *zap.Logger) *QuizController {
	return &QuizController{quiz: quiz, log: log}
}

// POST /api/quiz/save
func (qc *QuizController) Save(c *gin.Context) {
	var input SaveQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	user, err := qc.quiz.Save(c.Request.Context(), input.Email, input.Answers)
	if err != nil {
		respondError(c, qc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": user.ID})
}
