// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"trimspire/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DevController exposes helpers that are only routed in development.
type DevController struct {
	recipes *services.RecipeService
	log     *zap.Logger
}

func NewDevController(recipes *services.RecipeService, log *zap.Logger) *DevController {
	return &DevController{recipes: recipes, log: log}
}

// POST /api/dev/seed
func (d *DevController) Seed(c *gin.Context) {
	created, err := d.recipes.Seed(c.Request.Context(), services.SeedRecipes)
	if err != nil {
		respondError(c, d.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created, "total": len(services.SeedRecipes)})
}
