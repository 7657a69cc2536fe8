package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/internal/middleware"
	"github.com/smartexpense/expense-manager/models"
)

// GetCategories lists the acting user's categories ordered by type then name.
func GetCategories(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		categories, err := database.GetCategoriesByUser(c.Request.Context(), pool, user.UserID)
		if err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("list categories failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// AddCategory creates a bucket from the form. The type enum is validated here
// at the boundary, once.
func AddCategory(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		name := strings.TrimSpace(c.PostForm("name"))
		categoryType := c.PostForm("type")
		if name == "" || !models.ValidCategoryType(categoryType) {
			redirectWithError(c, "/categories", "Invalid category data")
			return
		}

		category := &models.Category{
			UserID: user.UserID,
			Name:   name,
			Type:   categoryType,
		}
		if err := database.CreateCategory(c.Request.Context(), pool, category); err != nil {
			log.Error().Err(err).Int("user_id", user.UserID).Msg("add category failed")
			redirectWithError(c, "/categories", "Failed to add category")
			return
		}
		redirectWithSuccess(c, "/categories", "Category added")
	}
}

// DeleteCategory removes an owned bucket. Deletion is blocked with a
// distinguishable conflict message while transactions still reference it.
func DeleteCategory(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		if err := database.DeleteCategory(c.Request.Context(), pool, id, user.UserID); err != nil {
			switch {
			case errors.Is(err, database.ErrCategoryInUse):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete category with existing transactions"})
			case errors.Is(err, database.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			default:
				log.Error().Err(err).Int("user_id", user.UserID).Int("id", id).Msg("delete category failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
