package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripmate/pkg/utils"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware reuses an incoming X-Trace-ID or mints a new one.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
