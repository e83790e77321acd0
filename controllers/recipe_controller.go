package controllers

import (
	"net/http"
	"strings"

	"trimspire/models"
	"trimspire/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type listRecipesQuery struct {
	MealType string `form:"mealType"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
	Offset   int    `form:"offset" binding:"gte=0"`
	Limit    int    `form:"limit" binding:"gte=0"`
}

type RecipeController struct {
	recipes *services.RecipeService
	log     *zap.Logger
}

func NewRecipeController(recipes *services.RecipeService, log *zap.Logger) *RecipeController {
	return &RecipeController{recipes: recipes, log: log}
}

// GET /api/recipes
func (rc *RecipeController) List(c *gin.Context) {
	var q listRecipesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	mealType := models.MealType(strings.ToUpper(strings.TrimSpace(q.MealType)))
	if mealType != "" && !mealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type"})
		return
	}

	recipes, err := rc.recipes.List(c.Request.Context(), services.RecipeFilter{
		MealType: mealType,
		Tag:      strings.TrimSpace(q.Tag),
		Search:   strings.TrimSpace(q.Search),
		Offset:   q.Offset,
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GET /api/recipes/:id
func (rc *RecipeController) Get(c *gin.Context) {
	recipe, err := rc.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GET /api/recipes/tags
func (rc *RecipeController) Tags(c *gin.Context) {
	tags, err := rc.recipes.Tags(c.Request.Context())
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// POST /api/recipes
func (rc *RecipeController) Create(c *gin.Context) {
	var input services.CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	input.MealType = models.MealType(strings.ToUpper(string(input.MealType)))

	recipe, err := rc.recipes.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}
