package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/smartexpense/expense-manager/internal/auth"
)

// CookieName is the http-only cookie carrying the signed identity token.
const CookieName = "token"

const userKey = "currentUser"

// RequireAuth verifies the identity token and puts the decoded claims into the
// gin context. Identity is self-contained in the token, so no database lookup
// happens per request. Browser navigations are redirected to the login view;
// API-style calls get a 401 JSON body.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			deny(c)
			return
		}

		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("invalid identity token")
			deny(c)
			return
		}

		c.Set(userKey, claims)
		c.Next()
	}
}

func deny(c *gin.Context) {
	if isNavigation(c.Request) {
		c.Redirect(http.StatusFound, "/auth/login")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	c.Abort()
}

// isNavigation distinguishes a browser page load from an API-style call.
func isNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}

// CurrentUser returns the acting identity attached by RequireAuth.
func CurrentUser(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
