package web

import (
	"net/http"
	"strconv"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/form"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/services"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/galaxymap"

	"github.com/gin-gonic/gin"
)

type mapQuery struct {
	Zoom float64 `form:"zoom"`
	X    float64 `form:"x"`
	Y    float64 `form:"y"`
}

func (s *Server) handleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, domain.WorldTypes())
}

func (s *Server) handleListWorlds(c *gin.Context) {
	var f domain.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, "invalid filter")
		return
	}

	worlds, err := s.svc.Gallery.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	if worlds == nil {
		worlds = []domain.WorldRecord{}
	}
	c.JSON(http.StatusOK, worlds)
}

// handleGetWorld answers null for unknown or unapproved ids.
func (s *Server) handleGetWorld(c *gin.Context) {
	w, err := s.svc.Gallery.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.svc.Gallery.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleMap(c *gin.Context) {
	var f domain.Filter
	var q mapQuery
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, "invalid filter")
		return
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid viewport")
		return
	}

	view := galaxymap.Viewport{Zoom: q.Zoom, Pan: galaxymap.Point{X: q.X, Y: q.Y}}
	scene, err := s.svc.Gallery.Map(c.Request.Context(), f, view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (s *Server) handleSteps(c *gin.Context) {
	c.JSON(http.StatusOK, form.Steps())
}

func (s *Server) handleValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		badRequest(c, "invalid step")
		return
	}

	var values form.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		badRequest(c, "invalid form values")
		return
	}

	if err := form.ValidateStep(step, values, currentUser(c) != nil); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "step": step, "total": form.TotalSteps()})
}

func (s *Server) handleSubmit(c *gin.Context) {
	var values form.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		badRequest(c, "invalid form values")
		return
	}

	user := currentUser(c)
	payload, err := form.Build(values, user != nil)
	if err != nil {
		writeError(c, err)
		return
	}

	w, err := s.svc.Submissions.Submit(c.Request.Context(), payload, user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": w.ID, "status": w.Status, "name": w.Name})
}

func (s *Server) handleContribute(c *gin.Context) {
	var in services.ContributionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid contribution")
		return
	}

	contribution, err := s.svc.Contributions.Add(c.Request.Context(), c.Param("id"), in, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contribution)
}
