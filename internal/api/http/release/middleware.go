package release

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oshokin/release-server/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const (
	maxRequestIDLength = 128
	corsMaxAge         = 12 * time.Hour
)

// requestID assigns every request an id and binds it to the request logger.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Header(RequestIDHeader, id)

		ctx := logger.WithKV(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// routeFields binds the matched path parameters to the request logger,
// so the access log and handler logs name the release group.
func routeFields() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(c.Params) > 0 {
			fields := make(map[string]any, len(c.Params))
			for _, param := range c.Params {
				fields[param.Key] = param.Value
			}

			c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), fields))
		}

		c.Next()
	}
}

// accessLog logs one line per finished request.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		kvs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.WarnKV(ctx, "HTTP request", kvs...)

			return
		}

		logger.InfoKV(ctx, "HTTP request", kvs...)
	}
}

// recovery turns panics into internal errors.
func recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.ErrorKV(c.Request.Context(), "Handler panicked", "panic", recovered)
		abortWithCode(c, http.StatusInternalServerError, codeInternal, internalErrorResponse)
	})
}

// deadline bounds request handling.
func deadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()

			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// adminAuth requires "Authorization: Bearer <token>". An empty token disables the check.
func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()

			return
		}

		presented, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(presented)), []byte(token)) != 1 {
			logger.WarnKV(c.Request.Context(), "Unauthorized admin request",
				"method", c.Request.Method, "path", c.Request.URL.Path, "client_ip", c.ClientIP())

			c.Header("WWW-Authenticate", `Bearer realm="release-server"`)
			abortWithCode(c, http.StatusUnauthorized, codeUnauthorized, "missing or invalid admin token")

			return
		}

		c.Next()
	}
}

// readCORS lets browsers call the read routes from the given origins, or from
// any origin when none are listed. Admin routes never get CORS headers.
func readCORS(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "If-None-Match", RequestIDHeader},
		ExposeHeaders: []string{"ETag", "Retry-After", "Location", RequestIDHeader},
		MaxAge:        corsMaxAge,
		AllowWildcard: true,
	}

	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}

// readRoute registers handler for GET and answers CORS preflights on the same path.
func readRoute(group *gin.RouterGroup, path string, handler gin.HandlerFunc) {
	group.GET(path, handler)
	group.OPTIONS(path, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}
