package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/internal/middleware"
)

// GetDashboard assembles the home view: trailing monthly totals, current
// month budget alerts, category breakdown and recent activity.
func GetDashboard(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		dash, err := database.GetDashboard(c.Request.Context(), pool, user.UserID, time.Now())
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("dashboard failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":    user.UserID,
				"name":  user.Name,
				"email": user.Email,
			},
			"summary":             dash.Summary,
			"budget_alerts":       dash.BudgetAlerts,
			"category_spend":      dash.CategorySpend,
			"recent_transactions": dash.RecentTransactions,
			"current_month":       dash.CurrentMonth,
			"current_year":        dash.CurrentYear,
			"current_summary":     dash.CurrentSummary,
		})
	}
}
