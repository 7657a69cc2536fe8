package handlers

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, w
}

// A redirect to a path that already carries filters must join the flag with &,
// keeping month and year intact.
func TestRedirectFlagsPreserveFilters(t *testing.T) {
	c, w := testContext(t, "/budgets")
	redirectWithSuccess(c, "/budgets?month=6&year=2024", "Budget saved")

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	q := loc.Query()
	if q.Get("month") != "6" || q.Get("year") != "2024" {
		t.Errorf("filters mangled: month=%q year=%q", q.Get("month"), q.Get("year"))
	}
	if q.Get("success") != "Budget saved" {
		t.Errorf("success flag = %q, want %q", q.Get("success"), "Budget saved")
	}
}

func TestRedirectFlagsBarePath(t *testing.T) {
	c, w := testContext(t, "/categories")
	redirectWithError(c, "/categories", "Invalid category data")

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Path != "/categories" || loc.Query().Get("error") != "Invalid category data" {
		t.Errorf("unexpected location %q", w.Header().Get("Location"))
	}
}

func TestMonthYearFromQuery(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name      string
		target    string
		wantMonth int
		wantYear  int
	}{
		{"absent", "/transactions", int(now.Month()), now.Year()},
		{"explicit", "/transactions?month=3&year=2024", 3, 2024},
		{"out of range passes through", "/transactions?month=13&year=2024", 13, 2024},
		{"malformed month", "/transactions?month=abc&year=2024", int(now.Month()), 2024},
		{"negative month", "/transactions?month=-1&year=2024", int(now.Month()), 2024},
		{"zero year", "/transactions?month=5&year=0", 5, now.Year()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := testContext(t, tc.target)
			month, year := monthYearFromQuery(c)
			if month != tc.wantMonth || year != tc.wantYear {
				t.Errorf("got %d/%d, want %d/%d", month, year, tc.wantMonth, tc.wantYear)
			}
		})
	}
}
