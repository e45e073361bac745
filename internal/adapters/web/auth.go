package web

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) handleLogin(c *gin.Context) {
	if s.svc.Identity == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse{Error: "sign-in is not configured"})
		return
	}

	state := uuid.NewString()
	s.sessions.writeCookie(c, stateCookie, state, stateTTL)
	c.Redirect(http.StatusFound, s.svc.Identity.AuthCodeURL(state))
}

func (s *Server) handleCallback(c *gin.Context) {
	if s.svc.Identity == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse{Error: "sign-in is not configured"})
		return
	}

	if reason := c.Query("error"); reason != "" {
		slog.Info("Sign-in declined", "reason", reason)
		c.Redirect(http.StatusFound, "/")
		return
	}

	expected, err := c.Cookie(stateCookie)
	state := c.Query("state")
	if err != nil || expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		badRequest(c, "invalid sign-in state")
		return
	}
	s.sessions.clearCookie(c, stateCookie)

	user, err := s.svc.Identity.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		slog.Warn("Sign-in failed", "error", err)
		c.AbortWithStatusJSON(http.StatusBadGateway, errorResponse{Error: "sign-in failed"})
		return
	}

	if err := s.sessions.setCookie(c, user); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("User signed in", "user_id", user.ID)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	s.sessions.clearCookie(c, sessionCookie)
	c.Status(http.StatusNoContent)
}

// handleMe reports the signed-in user and whether they can moderate.
func (s *Server) handleMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil, "moderator": false, "login_url": loginPath})
		return
	}

	moderator, err := s.svc.Access.IsModerator(c.Request.Context(), user.ID)
	if err != nil {
		slog.Warn("Failed to check moderator role", "user_id", user.ID, "error", err)
		moderator = false
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "moderator": moderator})
}
