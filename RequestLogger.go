package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// RequestLogger tags every response with a generated request id and logs
// method, path, status and duration once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.NewString()
		c.Header(RequestIdHeader, requestId)

		started := time.Now()
		c.Next()

		log.Printf("REQUEST %s %s status=%d duration=%s id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(started), requestId)
	}
}
