package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/internal/middleware"
	"github.com/smartexpense/expense-manager/models"
)

// GetBudgets lists the month's budgets with realized spend per category,
// plus the expense categories for the form.
func GetBudgets(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		month, year := monthYearFromQuery(c)

		budgets, err := database.GetBudgets(c.Request.Context(), pool, user.UserID, month, year)
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("list budgets failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load budgets"})
			return
		}

		categories, err := database.GetExpenseCategoriesByUser(c.Request.Context(), pool, user.UserID)
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("list expense categories failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load budgets"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"budgets":    budgets,
			"categories": categories,
			"filters": gin.H{
				"month": month,
				"year":  year,
			},
			"months":      MonthNames,
			"currentYear": time.Now().Year(),
		})
	}
}

// SetBudget upserts the ceiling for (category, month, year): a second call
// with the same key replaces the amount.
func SetBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		categoryID, err1 := strconv.Atoi(c.PostForm("category_id"))
		month, err2 := strconv.Atoi(c.PostForm("month"))
		year, err3 := strconv.Atoi(c.PostForm("year"))
		amountStr := c.PostForm("amount")
		if err1 != nil || err2 != nil || err3 != nil || amountStr == "" {
			redirectWithError(c, "/budgets", "All fields are required")
			return
		}
		if month < 1 || month > 12 {
			redirectWithError(c, "/budgets", "All fields are required")
			return
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			redirectWithError(c, "/budgets", "All fields are required")
			return
		}

		budget := &models.Budget{
			UserID:     user.UserID,
			CategoryID: categoryID,
			Month:      month,
			Year:       year,
			Amount:     amount,
		}
		if err := database.SetBudget(c.Request.Context(), pool, budget); err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("set budget failed")
			redirectWithError(c, "/budgets", "Failed to save budget")
			return
		}
		redirectWithSuccess(c, fmt.Sprintf("/budgets?month=%d&year=%d", month, year), "Budget saved")
	}
}

type budgetUpdateRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// UpdateBudget replaces the amount of a budget owned by the acting user.
func UpdateBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget id"})
			return
		}

		var req budgetUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		if err := database.UpdateBudgetAmount(c.Request.Context(), pool, id, user.UserID, req.Amount); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
				return
			}
			log.Error().Err(err).Int("user_id", user.UserID).Int("id", id).Msg("update budget failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
