package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request to l.
func Logger(l *log.Logger) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    l.Writer(),
		SkipPaths: []string{"/healthz"},
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("%sREQUEST : %s %s -> %d (%s) %s\n",
				l.Prefix(),
				p.Method,
				p.Path,
				p.StatusCode,
				p.Latency.Round(time.Microsecond),
				p.ErrorMessage,
			)
		},
	})
}
