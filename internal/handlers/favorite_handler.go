package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltjobs/jobboard/internal/identity"
	"github.com/rooseveltjobs/jobboard/internal/services"
)

type FavoriteHandler struct {
	Favorites *services.FavoritesService
}

func NewFavoriteHandler(favorites *services.FavoritesService) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites}
}

// Toggle is POST /api/v1/postings/:id/favorite (student portal).
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	ident := identity.FromContext(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	favorited, favorites, err := h.Favorites.Toggle(c.Request.Context(), ident.UID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited, "favorites": favorites})
}

// List is GET /api/v1/favorites (student portal).
func (h *FavoriteHandler) List(c *gin.Context) {
	ident := identity.FromContext(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	favorites, err := h.Favorites.List(c.Request.Context(), ident.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "count": len(favorites)})
}
