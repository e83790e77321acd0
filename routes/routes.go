package routes

import (
	"fmt"

	"trimspire/config"
	"trimspire/controllers"
	"trimspire/middlewares"
	"trimspire/services"
	"trimspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries everything the router needs. Uploader may be nil.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	Auth     *services.AuthService
	Quiz     *services.QuizService
	Menu     *services.MenuService
	Recipes  *services.RecipeService
	Uploader utils.ImageUploader
	Limiter  *middlewares.RateLimiter
}

// SetupRouter fails only on an invalid trusted proxy list.
func SetupRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	// Client IPs key the rate limiter, so forwarding headers count only from
	// configured proxies. An empty list trusts none.
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(middlewares.RequestLogger(d.Log), middlewares.Recovery(d.Log), middlewares.SecurityHeaders())
	r.SetHTMLTemplate(controllers.Templates())

	secure := !d.Config.IsDevelopment()
	authCtl := controllers.NewAuthController(d.Auth, secure, d.Log)
	userCtl := controllers.NewUserController(d.Auth, d.Quiz, d.Log)
	quizCtl := controllers.NewQuizController(d.Quiz, d.Log)
	menuCtl := controllers.NewMenuController(d.Menu, d.Log)
	recipeCtl := controllers.NewRecipeController(d.Recipes, d.Log)
	uploadCtl := controllers.NewImageUploadController(d.Uploader, d.Log)
	dashCtl := controllers.NewDashboardController(d.Auth, d.Menu, d.Quiz, d.Config.AppURL+"/login", d.Log)
	healthCtl := controllers.NewHealthController(d.DB, d.Log)

	requireSession := middlewares.AuthMiddleware(d.Auth)
	requireAdmin := middlewares.RequireAdmin(d.Auth, d.Config.IsAdmin)
	limit := func(c *gin.Context) { c.Next() }
	if d.Limiter != nil {
		limit = d.Limiter.Limit()
	}

	r.GET("/health", healthCtl.Check)
	r.GET("/dashboard", dashCtl.Show)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", limit, authCtl.Login)
		auth.POST("/magic-link", limit, authCtl.RequestMagicLink)
		auth.GET("/verify", limit, authCtl.VerifyMagicLink)
		auth.POST("/set-password", limit, authCtl.SetPassword)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/me", requireSession, userCtl.Me)
	}

	quiz := api.Group("/quiz")
	{
		quiz.POST("/save", limit, quizCtl.Save)
		quiz.GET("/answers", requireSession, userCtl.Answers)
	}

	api.GET("/menu/generate", requireSession, menuCtl.Generate)

	recipes := api.Group("/recipes")
	{
		recipes.GET("", recipeCtl.List)
		recipes.GET("/tags", recipeCtl.Tags)
		recipes.GET("/:id", recipeCtl.Get)
		recipes.POST("", requireSession, requireAdmin, recipeCtl.Create)
		recipes.POST("/images", requireSession, requireAdmin, uploadCtl.Upload)
	}

	if d.Config.IsDevelopment() {
		devCtl := controllers.NewDevController(d.Recipes, d.Log)
		api.POST("/dev/seed", devCtl.Seed)
	}

	return r, nil
}
