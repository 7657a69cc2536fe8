package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/smartexpense/expense-manager/internal/config"
	"github.com/smartexpense/expense-manager/internal/handlers"
	"github.com/smartexpense/expense-manager/internal/middleware"
)

// SetupRouter wires the full HTTP surface. Everything except the auth
// endpoints sits behind the authentication gate.
func SetupRouter(pool *pgxpool.Pool, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("request panicked")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register(pool, cfg))
		auth.POST("/login", handlers.Login(pool, cfg))
		auth.GET("/logout", handlers.Logout())
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		protected.GET("/", handlers.GetDashboard(pool))

		protected.GET("/transactions", handlers.GetTransactions(pool))
		protected.GET("/transactions/export", handlers.ExportCSV(pool))
		protected.POST("/transactions", handlers.AddTransaction(pool))
		protected.PUT("/transactions/:id", handlers.UpdateTransaction(pool))
		protected.DELETE("/transactions/:id", handlers.DeleteTransaction(pool))

		protected.GET("/categories", handlers.GetCategories(pool))
		protected.POST("/categories", handlers.AddCategory(pool))
		protected.DELETE("/categories/:id", handlers.DeleteCategory(pool))

		protected.GET("/budgets", handlers.GetBudgets(pool))
		protected.POST("/budgets", handlers.SetBudget(pool))
		protected.PUT("/budgets/:id", handlers.UpdateBudget(pool))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	return r
}
