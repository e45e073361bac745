package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/gin-gonic/gin"
)

const loginPath = "/auth/login"

type errorResponse struct {
	Error    string   `json:"error"`
	Step     int      `json:"step,omitempty"`
	Field    string   `json:"field,omitempty"`
	Fields   []string `json:"fields,omitempty"`
	LoginURL string   `json:"login_url,omitempty"`
}

// writeError maps domain errors onto HTTP statuses and aborts the chain.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse{
			Error:  ve.Error(),
			Step:   ve.Step,
			Field:  ve.Field,
			Fields: ve.Fields,
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: err.Error(), LoginURL: loginPath})
	case errors.Is(err, domain.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyModerated), errors.Is(err, domain.ErrNotCollaborative):
		c.AbortWithStatusJSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("Request failed", "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey), "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: msg})
}
