package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request and recovers from handler panics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"request_panic method=%s path=%s client_ip=%s error=%q stack=%s",
					c.Request.Method, c.Request.URL.Path, c.ClientIP(), err.Error(), debug.Stack(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal server error",
					},
				})
				return
			}

			log.Printf(
				"request method=%s path=%s status=%d client_ip=%s user_id=%d latency=%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.Writer.Status(),
				c.ClientIP(),
				c.GetInt64("user_id"),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
