package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	favoriteuc "github.com/reservafacil/reserva-api/internal/application/usecase/favorite"
	"github.com/reservafacil/reserva-api/internal/domain/favorite"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type FavoriteHandler struct {
	favoriteUC *favoriteuc.FavoriteUseCase
	logger     logger.Logger
}

func NewFavoriteHandler(favoriteUC *favoriteuc.FavoriteUseCase, log logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC, logger: log}
}

// Add bookmarks a restaurant for the usuario in the path. Adding the same
// restaurant twice is a 400, not a 409, that is the published contract.
func (h *FavoriteHandler) Add(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	var req FavoritoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantesID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para agregar a favoritos"})
		return
	}

	f, err := h.favoriteUC.Add(c.Request.Context(), id, *req.RestaurantesID)
	if err != nil {
		if errors.Is(err, favorite.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El restaurante ya está en favoritos"})
			return
		}
		h.logger.Error("Failed to add favorito", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Restaurante agregado a favoritos", "favorito": ToFavoritoDTO(f)})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	var req FavoritoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantesID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para eliminar de favoritos"})
		return
	}

	if err := h.favoriteUC.Remove(c.Request.Context(), id, *req.RestaurantesID); err != nil {
		if errors.Is(err, favorite.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "El restaurante no está en favoritos"})
			return
		}
		h.logger.Error("Failed to remove favorito", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurante eliminado de favoritos"})
}

func (h *FavoriteHandler) ListByUsuario(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	favorites, err := h.favoriteUC.ListByUsuario(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list favoritos", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	dtos := make([]FavoritoDTO, 0, len(favorites))
	for _, f := range favorites {
		dtos = append(dtos, ToFavoritoDTO(f))
	}
	c.JSON(http.StatusOK, dtos)
}
