package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is gin's access log without health checks.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("%s %s %s %d %s %s\n",
				p.TimeStamp.Format(time.RFC3339),
				p.Method,
				p.Path,
				p.StatusCode,
				p.Latency,
				p.ErrorMessage,
			)
		},
	})
}
