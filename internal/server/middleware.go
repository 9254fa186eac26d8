package server

import (
	"time"

	"lostfound-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses a well-formed inbound request id or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.IsID(id) {
		id = utils.GenerateID()
	}
	c.Set(RequestIDHeader, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(RequestIDHeader),
	})
}
