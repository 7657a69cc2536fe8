package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// MonthNames is echoed into list view models for the month filter dropdowns.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthYearFromQuery reads the month/year filters, defaulting to the current
// calendar month when absent or malformed. Out-of-range values pass through
// unchanged and simply select an empty window.
func monthYearFromQuery(c *gin.Context) (int, int) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if m, err := strconv.Atoi(c.Query("month")); err == nil && m > 0 {
		month = m
	}
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		year = y
	}
	return month, year
}

// redirectWithError sends the browser back to a page with an error flag.
func redirectWithError(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, appendQueryFlag(path, "error", msg))
}

// redirectWithSuccess sends the browser back to a page with a success flag.
func redirectWithSuccess(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, appendQueryFlag(path, "success", msg))
}

// appendQueryFlag joins with & when the path already carries a query string,
// so existing filters survive the redirect.
func appendQueryFlag(path, key, msg string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + key + "=" + url.QueryEscape(msg)
}
