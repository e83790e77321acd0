package controllers

import (
	"net/http"

	"trimspire/middlewares"
	"trimspire/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	auth *services.AuthService
	quiz *services.QuizService
	log  *zap.Logger
}

func NewUserController(auth *services.AuthService, quiz *services.QuizService, log *zap.Logger) *UserController {
	return &UserController{auth: auth, quiz: quiz, log: log}
}

// GET /api/auth/me
func (uc *UserController) Me(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	user, err := uc.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"hasPassword": user.HasPassword(),
	})
}

// GET /api/quiz/answers
func (uc *UserController) Answers(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	answers, err := uc.quiz.Answers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}
