package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/smartexpense/expense-manager/internal/auth"
	"github.com/smartexpense/expense-manager/internal/config"
	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/models"
)

const minPasswordLength = 6

// Register handles the registration form: validate, create the user with its
// seeded default categories, then sign the user in and land on the dashboard.
func Register(pool *pgxpool.Pool, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		password := c.PostForm("password")
		confirm := c.PostForm("confirm_password")

		if name == "" || email == "" || password == "" {
			redirectWithError(c, "/auth/register", "All fields are required")
			return
		}
		if password != confirm {
			redirectWithError(c, "/auth/register", "Passwords do not match")
			return
		}
		if len(password) < minPasswordLength {
			redirectWithError(c, "/auth/register", "Password must be at least 6 characters")
			return
		}

		user := &models.User{Name: name, Email: email}
		if err := database.RegisterUser(c.Request.Context(), pool, user, password); err != nil {
			if errors.Is(err, database.ErrEmailTaken) {
				redirectWithError(c, "/auth/register", "Email already registered")
				return
			}
			log.Error().Err(err).Str("email", email).Msg("registration failed")
			redirectWithError(c, "/auth/register", "Registration failed. Please try again.")
			return
		}

		if err := issueSession(c, cfg, user); err != nil {
			log.Error().Err(err).Int("user_id", user.ID).Msg("token generation failed")
			redirectWithError(c, "/auth/login", "Login failed. Please try again.")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password share one generic message.
func Login(pool *pgxpool.Pool, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		if email == "" || password == "" {
			redirectWithError(c, "/auth/login", "Email and password are required")
			return
		}

		user, err := database.AuthenticateUser(c.Request.Context(), pool, email, password)
		if err != nil {
			if errors.Is(err, database.ErrInvalidCredentials) {
				redirectWithError(c, "/auth/login", "Invalid email or password")
				return
			}
			log.Error().Err(err).Msg("login failed")
			redirectWithError(c, "/auth/login", "Login failed. Please try again.")
			return
		}

		if err := issueSession(c, cfg, user); err != nil {
			log.Error().Err(err).Int("user_id", user.ID).Msg("token generation failed")
			redirectWithError(c, "/auth/login", "Login failed. Please try again.")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// Logout clears the cookie. The token itself stays valid until natural
// expiry; there is no server-side revocation.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/auth/login")
	}
}

func issueSession(c *gin.Context, cfg *config.Config, user *models.User) error {
	token, err := auth.GenerateToken(cfg.JWTSecret, user.ID, user.Name, user.Email)
	if err != nil {
		return err
	}
	c.SetCookie("token", token, int(auth.TokenTTL.Seconds()), "/", "", cfg.IsProduction(), true)
	return nil
}
