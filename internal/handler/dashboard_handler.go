package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/student-assist-api/internal/models"
	"github.com/campushub/student-assist-api/internal/service"
	appErrors "github.com/campushub/student-assist-api/pkg/errors"
	"github.com/campushub/student-assist-api/pkg/response"
)

// RosterProvider supplies the role-scoped roster view.
type RosterProvider interface {
	VisibleRoster(ctx context.Context, principal models.Principal) ([]models.Student, error)
}

// DashboardHandler serves the role-specific landing views. Every view returns
// the same shape: the caller's principal, landing path and visible roster.
// Role and scope checks happen in middleware before these run.
type DashboardHandler struct {
	roster RosterProvider
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(roster RosterProvider) *DashboardHandler {
	return &DashboardHandler{roster: roster}
}

// HOD godoc
// @Summary Head of department landing view
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/hod [get]
func (h *DashboardHandler) HOD(c *gin.Context) {
	h.render(c)
}

// Mentor godoc
// @Summary Mentor landing view
// @Tags Dashboard
// @Produce json
// @Param id path int true "Mentor id"
// @Success 200 {object} response.Envelope
// @Router /dashboard/mentor/{id} [get]
func (h *DashboardHandler) Mentor(c *gin.Context) {
	h.render(c)
}

// Class godoc
// @Summary Class teacher landing view
// @Tags Dashboard
// @Produce json
// @Param label path string true "Class label"
// @Success 200 {object} response.Envelope
// @Router /dashboard/class/{label} [get]
func (h *DashboardHandler) Class(c *gin.Context) {
	h.render(c)
}

// Student godoc
// @Summary Student landing view
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/student [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	h.render(c)
}

func (h *DashboardHandler) render(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	principal := claims.Principal()
	students, err := h.roster.VisibleRoster(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"role":     principal.Role,
		"landing":  service.LandingPath(principal),
		"students": students,
		"count":    len(students),
	})
}
