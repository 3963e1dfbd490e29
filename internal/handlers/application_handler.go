package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltjobs/jobboard/internal/apperr"
	"github.com/rooseveltjobs/jobboard/internal/dtos"
	"github.com/rooseveltjobs/jobboard/internal/identity"
	"github.com/rooseveltjobs/jobboard/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Postings     *services.PostingService
}

func NewApplicationHandler(applications *services.ApplicationService, postings *services.PostingService) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: applications,
		Postings:     postings,
	}
}

// Submit is POST /api/v1/postings/:id/applications (student portal).
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Submit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListForPosting is GET /api/v1/postings/:id/applications (employer portal).
// Employers can only review applications for their own postings.
func (h *ApplicationHandler) ListForPosting(c *gin.Context) {
	ident := identity.FromContext(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	posting, err := h.Postings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if posting.EmployerID != ident.UID {
		respondError(c, apperr.ErrForbidden)
		return
	}

	apps, err := h.Applications.ListForPosting(c.Request.Context(), posting.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}
