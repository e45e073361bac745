package web

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	userKey         = "user"
)

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", routePath(c),
			"status", status,
			"latency", time.Since(start),
			"request_id", requestID,
		}
		if status >= 500 {
			slog.Error("HTTP request", attrs...)
			return
		}
		slog.Debug("HTTP request", attrs...)
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		c.Next()
		metrics.HTTPRequestsInFlight.Dec()

		method := c.Request.Method
		path := routePath(c)
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		if c.Writer.Status() >= 400 {
			metrics.HTTPRequestErrors.WithLabelValues(method, path, status).Inc()
		}
	}
}

// routePath is the matched route pattern, so ids do not explode label cardinality.
func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

// loadSession attaches the signed-in user, if any. A bad cookie is treated as
// signed out.
func (s *Server) loadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		user, err := s.sessions.Parse(raw)
		if err != nil {
			slog.Debug("Ignoring session cookie", "error", err)
			s.sessions.clearCookie(c, sessionCookie)
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			writeError(c, domain.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

func requireModerator(access ModeratorChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			writeError(c, domain.ErrUnauthenticated)
			return
		}

		ok, err := access.IsModerator(c.Request.Context(), user.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		if !ok {
			writeError(c, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}
