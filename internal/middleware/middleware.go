package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/molstack/scoreflow/pkg/logger"
	"github.com/molstack/scoreflow/pkg/metrics"
	"github.com/molstack/scoreflow/pkg/set"
)

const (
	UserIdHeader    = "USER-ID"
	RequestIdHeader = "X-REQUEST-ID"
)

var (
	reqHeadersToPropagate *set.ThreadSafeSet
)

func InitHTTPMiddleware() {
	reqHeadersToPropagate = set.NewThreadSafeSet(UserIdHeader, RequestIdHeader)
}

// PropagatedHeaders extracts the whitelisted request headers so they can
// travel with the batch through component execution.
func PropagatedHeaders(c *gin.Context) map[string]string {
	headers := make(map[string]string)
	if reqHeadersToPropagate == nil {
		return headers
	}
	for _, name := range reqHeadersToPropagate.Strings() {
		if value := c.GetHeader(name); value != "" {
			headers[name] = value
		}
	}
	return headers
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		tags := []string{"path:" + c.FullPath(), "method:" + c.Request.Method}
		metrics.Count("scoreflow.http.request.total", 1, tags)

		c.Next()

		status := c.Writer.Status()
		tags = append(tags, "status:"+strconv.Itoa(status))
		metrics.Timing("scoreflow.http.request.latency", time.Since(startTime), tags)
		if status >= http.StatusInternalServerError {
			metrics.Count("scoreflow.http.request.error", 1, tags)
		}
	}
}

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(fmt.Sprintf("Panic recovered while serving %s: %v\n%s", c.FullPath(), r, debug.Stack()), nil)
				metrics.Count("scoreflow.http.request.panic", 1, []string{"path:" + c.FullPath()})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "something went wrong!"})
			}
		}()
		c.Next()
	}
}
