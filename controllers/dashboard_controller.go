package controllers

import (
	"errors"
	"net/http"

	"trimspire/middlewares"
	"trimspire/services"
	"trimspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	auth *services.AuthService
	menu *services.MenuService
	quiz *services.QuizService

	// frontend login page for visitors without a valid session
	loginURL string
	log      *zap.Logger
}

func NewDashboardController(auth *services.AuthService, menu *services.MenuService, quiz *services.QuizService, loginURL string, log *zap.Logger) *DashboardController {
	return &DashboardController{auth: auth, menu: menu, quiz: quiz, loginURL: loginURL, log: log}
}

// GET /dashboard
func (dc *DashboardController) Show(c *gin.Context) {
	token, err := c.Cookie(middlewares.SessionCookie)
	if err != nil || token == "" {
		c.Redirect(http.StatusFound, dc.loginURL)
		return
	}
	userID, err := dc.auth.Authenticate(token)
	if err != nil {
		c.Redirect(http.StatusFound, dc.loginURL)
		return
	}

	ctx := c.Request.Context()
	user, err := dc.auth.CurrentUser(ctx, userID)
	if errors.Is(err, services.ErrNotFound) {
		c.Redirect(http.StatusFound, dc.loginURL)
		return
	}
	if err != nil {
		dc.log.Error("dashboard user lookup", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	data := gin.H{"Email": user.Email}
	menu, err := dc.menu.Generate(ctx, userID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		data["Message"] = "Take the quiz to get your personal menu."
		c.HTML(http.StatusOK, "dashboard.html", data)
		return
	case errors.Is(err, services.ErrInsufficientRecipes):
		dc.log.Error("dashboard menu", zap.Error(err))
		data["Message"] = "The recipe catalog is not ready yet."
		c.HTML(http.StatusInternalServerError, "dashboard.html", data)
		return
	case err != nil:
		dc.log.Error("dashboard menu", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	answers, err := dc.quiz.Answers(ctx, userID)
	if err != nil {
		dc.log.Error("dashboard answers", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	data["Menu"] = menu
	data["Body"] = utils.NewBodyStats(answers.Height, answers.CurrentWeight, answers.GoalWeight)
	c.HTML(http.StatusOK, "dashboard.html", data)
}
