package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/services"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 32 << 20

func (s *Server) handlePending(c *gin.Context) {
	worlds, err := s.svc.Moderation.Pending(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if worlds == nil {
		worlds = []domain.WorldRecord{}
	}
	c.JSON(http.StatusOK, worlds)
}

func (s *Server) handleApprove(c *gin.Context) {
	w, err := s.svc.Moderation.Approve(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) handleReject(c *gin.Context) {
	w, err := s.svc.Moderation.Reject(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.svc.Moderation.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleExport(c *gin.Context) {
	worlds, err := s.svc.Moderation.Export(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if worlds == nil {
		worlds = []domain.WorldRecord{}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.ExportFilename(time.Now())))
	c.IndentedJSON(http.StatusOK, worlds)
}

func (s *Server) handleImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	var worlds []domain.WorldRecord
	if err := c.ShouldBindJSON(&worlds); err != nil {
		badRequest(c, "invalid import file")
		return
	}
	if len(worlds) == 0 {
		writeError(c, domain.NewValidationError(0, "worlds", "empty import"))
		return
	}
	if len(worlds) > s.maxImport {
		writeError(c, domain.NewValidationError(0, "worlds", fmt.Sprintf("at most %d worlds per import", s.maxImport)))
		return
	}

	n, err := s.svc.Moderation.Import(c.Request.Context(), currentUser(c), worlds)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}
