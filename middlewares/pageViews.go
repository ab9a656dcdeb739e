package middlewares

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
)

// Paths that never count as page views.
var excludedPrefixes = []string{
	"/manage",
	"/login",
	"/signup",
	"/health",
	"/favicon",
	"/static",
	"/media",
}

// Repeat hits from the same visitor on the same path inside this window
// count once.
const dedupWindow = 5 * time.Minute

// TrackPageViews records successful public GET requests for the dashboard
// analytics. Tracking failures are logged and never affect the response.
func TrackPageViews(c *gin.Context) {
	c.Next()

	if c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
		return
	}

	path := c.Request.URL.Path
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return
		}
	}

	ip := c.ClientIP()

	count, err := initializers.DB.From("page_view").
		Where(
			goqu.Ex{"path": path, "ip_address": ip},
			goqu.C("datetime_create").Gte(time.Now().Add(-dedupWindow)),
		).
		Count()
	if err != nil {
		log.Printf("Page view lookup failed for %s: %v", path, err)
		return
	}
	if count > 0 {
		return
	}

	view := models.PageView{
		Path:       path,
		Page_Name:  pageNameForPath(path),
		IP_Address: ip,
		User_Agent: c.Request.UserAgent(),
		Referer:    c.Request.Referer(),
	}

	_, err = initializers.DB.Insert("page_view").Rows(view).Executor().Exec()
	if err != nil {
		log.Printf("Page view insert failed for %s: %v", path, err)
	}
}

func pageNameForPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "Home"
	}

	segments := strings.Split(trimmed, "/")
	words := strings.Split(strings.ReplaceAll(segments[0], "-", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}

	return strings.Join(words, " ")
}
