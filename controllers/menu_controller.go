package controllers

import (
	"net/http"

	"trimspire/middlewares"
	"trimspire/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuController struct {
	menu *services.MenuService
	log  *zap.Logger
}

func NewMenuController(menu *services.MenuService, log *zap.Logger) *MenuController {
	return &MenuController{menu: menu, log: log}
}

// GET /api/menu/generate
func (mc *MenuController) Generate(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	resp, err := mc.menu.Generate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
