package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods = []string{http.MethodPost, http.MethodOptions}
	corsAllowHeaders = []string{"Origin", "Content-Type", "Accept", TraceIDHeader}
)

// CORSMiddleware allows any origin to call the suggestion endpoints from a browser.
// Requests without an Origin header still get the permissive headers, matching the
// serverless function's responses.
func CORSMiddleware() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    corsAllowMethods,
		AllowHeaders:    corsAllowHeaders,
		ExposeHeaders:   []string{TraceIDHeader},
		MaxAge:          12 * time.Hour,
	})

	return func(c *gin.Context) {
		if c.GetHeader("Origin") == "" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", strings.Join(corsAllowMethods, ", "))
			c.Header("Access-Control-Allow-Headers", strings.Join(corsAllowHeaders, ", "))
		}
		handler(c)
	}
}
