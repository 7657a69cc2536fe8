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
	"github.com/smartexpense/expense-manager/internal/export"
	"github.com/smartexpense/expense-manager/internal/middleware"
	"github.com/smartexpense/expense-manager/models"
)

const dateLayout = "2006-01-02"

// GetTransactions lists the month's ledger slice for the acting user, plus
// the category list and active filters for the page.
func GetTransactions(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		month, year := monthYearFromQuery(c)

		filter := models.TransactionFilter{Month: month, Year: year}
		if id, err := strconv.Atoi(c.Query("category")); err == nil && id > 0 {
			filter.CategoryID = id
		}

		transactions, err := database.GetTransactions(c.Request.Context(), pool, user.UserID, filter)
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("list transactions failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
			return
		}

		categories, err := database.GetCategoriesByUser(c.Request.Context(), pool, user.UserID)
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("list categories failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"transactions": transactions,
			"categories":   categories,
			"filters": gin.H{
				"month":      filter.Month,
				"year":       filter.Year,
				"categoryId": filter.CategoryID,
			},
			"months":      MonthNames,
			"currentYear": time.Now().Year(),
		})
	}
}

// AddTransaction records a ledger entry from the form and redirects with a
// flag.
func AddTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		categoryID, err := strconv.Atoi(c.PostForm("category_id"))
		amountStr := c.PostForm("amount")
		dateStr := c.PostForm("transaction_date")
		if err != nil || categoryID <= 0 || amountStr == "" || dateStr == "" {
			redirectWithError(c, "/transactions", "Missing required fields")
			return
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil || !amount.IsPositive() {
			redirectWithError(c, "/transactions", "Amount must be a positive number")
			return
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			redirectWithError(c, "/transactions", "Invalid transaction date")
			return
		}

		transaction := &models.Transaction{
			UserID:      user.UserID,
			CategoryID:  categoryID,
			Amount:      amount,
			Description: c.PostForm("description"),
			Date:        date,
		}
		if err := database.CreateTransaction(c.Request.Context(), pool, transaction); err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("add transaction failed")
			redirectWithError(c, "/transactions", "Failed to add transaction")
			return
		}
		redirectWithSuccess(c, "/transactions", "Transaction added")
	}
}

type transactionUpdateRequest struct {
	CategoryID  int             `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"transaction_date"`
}

// UpdateTransaction edits a row scoped to the acting user; a wrong owner or
// missing id is a 404, never a silent success on someone else's row.
func UpdateTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
			return
		}

		var req transactionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if req.CategoryID <= 0 || !req.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction date"})
			return
		}

		transaction := &models.Transaction{
			ID:          id,
			UserID:      user.UserID,
			CategoryID:  req.CategoryID,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
		}
		if err := database.UpdateTransaction(c.Request.Context(), pool, transaction); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			log.Error().Err(err).Int("user_id", user.UserID).Int("id", id).Msg("update transaction failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func DeleteTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
			return
		}

		if err := database.DeleteTransaction(c.Request.Context(), pool, id, user.UserID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			log.Error().Err(err).Int("user_id", user.UserID).Int("id", id).Msg("delete transaction failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ExportCSV streams the month's transactions as an attachment.
func ExportCSV(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		month, year := monthYearFromQuery(c)

		transactions, err := database.GetTransactionsForExport(c.Request.Context(), pool, user.UserID, month, year)
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("export failed")
			redirectWithError(c, "/transactions", "Export failed")
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(month, year)))
		c.String(http.StatusOK, export.CSV(transactions))
	}
}
