package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltjobs/jobboard/internal/dtos"
	"github.com/rooseveltjobs/jobboard/internal/identity"
	"github.com/rooseveltjobs/jobboard/internal/services"
)

type PostingHandler struct {
	Postings *services.PostingService
}

func NewPostingHandler(postings *services.PostingService) *PostingHandler {
	return &PostingHandler{Postings: postings}
}

// Create is POST /api/v1/postings (employer portal).
func (h *PostingHandler) Create(c *gin.Context) {
	ident := identity.FromContext(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	var req dtos.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	posting, err := h.Postings.Create(c.Request.Context(), ident.UID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posting)
}

// ListVisible is GET /api/v1/postings (student portal). The optional as_of
// query parameter (2006-01-02) defaults to today.
func (h *PostingHandler) ListVisible(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "as_of must be formatted as 2006-01-02"})
			return
		}
		asOf = parsed
	}

	postings, err := h.Postings.ListVisible(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"postings": postings, "count": len(postings)})
}

// ListMine is GET /api/v1/employer/postings (employer portal).
func (h *PostingHandler) ListMine(c *gin.Context) {
	ident := identity.FromContext(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	postings, err := h.Postings.ListByEmployer(c.Request.Context(), ident.UID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Dashboard totals shown at the top of the employer portal.
	totalApplications := 0
	for _, p := range postings {
		totalApplications += p.Applications
	}
	c.JSON(http.StatusOK, gin.H{
		"postings":           postings,
		"count":              len(postings),
		"total_applications": totalApplications,
	})
}

// ListPending is GET /api/v1/admin/postings/pending (admin review queue).
func (h *PostingHandler) ListPending(c *gin.Context) {
	postings, err := h.Postings.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"postings": postings, "count": len(postings)})
}

// Approve is POST /api/v1/admin/postings/:id/approve.
func (h *PostingHandler) Approve(c *gin.Context) {
	posting, err := h.Postings.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Deny is DELETE /api/v1/admin/postings/:id. The employer is notified before
// the posting is removed.
func (h *PostingHandler) Deny(c *gin.Context) {
	if err := h.Postings.Deny(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"denied": true})
}
