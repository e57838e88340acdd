package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ratinguc "github.com/reservafacil/reserva-api/internal/application/usecase/rating"
	"github.com/reservafacil/reserva-api/internal/domain/rating"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

const msgSinValoraciones = "Este restaurante no tiene valoraciones"

type RatingHandler struct {
	ratingUC *ratinguc.RatingUseCase
	logger   logger.Logger
}

func NewRatingHandler(ratingUC *ratinguc.RatingUseCase, log logger.Logger) *RatingHandler {
	return &RatingHandler{ratingUC: ratingUC, logger: log}
}

func (h *RatingHandler) Add(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	var req CreateValoracionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestauranteID == nil || req.Puntuacion == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para la valoración"})
		return
	}

	v, err := h.ratingUC.Add(c.Request.Context(), ratinguc.Input{
		UsuarioID:     id,
		RestauranteID: *req.RestauranteID,
		Puntuacion:    *req.Puntuacion,
		Comentario:    req.Comentario,
	})
	if err != nil {
		if errors.Is(err, rating.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya has valorado este restaurante"})
			return
		}
		h.logger.Error("Failed to add valoracion", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Valoración creada con éxito", "valoracion": ToValoracionDTO(v)})
}

func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	var req UpdateValoracionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestauranteID == nil || req.Puntuacion == nil || req.Comentario == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para poder actualizar la valoración"})
		return
	}

	v, err := h.ratingUC.Update(c.Request.Context(), ratinguc.Input{
		UsuarioID:     id,
		RestauranteID: *req.RestauranteID,
		Puntuacion:    *req.Puntuacion,
		Comentario:    *req.Comentario,
	})
	if err != nil {
		if errors.Is(err, rating.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No se encontró ninguna valoración para este restaurante hecha por este usuario"})
			return
		}
		h.logger.Error("Failed to update valoracion", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Valoración actualizada con éxito", "valoracion": ToValoracionDTO(v)})
}

func (h *RatingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	var req DeleteValoracionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestauranteID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para poder eliminar la valoración"})
		return
	}

	if err := h.ratingUC.Remove(c.Request.Context(), id, *req.RestauranteID); err != nil {
		if errors.Is(err, rating.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No existe una valoración para este restaurante"})
			return
		}
		h.logger.Error("Failed to delete valoracion", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Valoración eliminada con éxito"})
}

// ListByRestaurante is public, anyone browsing a restaurant sees its reviews.
func (h *RatingHandler) ListByRestaurante(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ratings, err := h.ratingUC.ListByRestaurante(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list valoraciones", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	if len(ratings) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": msgSinValoraciones})
		return
	}

	dtos := make([]ValoracionDTO, 0, len(ratings))
	for _, v := range ratings {
		dtos = append(dtos, ToValoracionDTO(v))
	}
	c.JSON(http.StatusOK, dtos)
}

// Average reports the mean score. With no ratings it answers the fixed
// message instead of a misleading zero.
func (h *RatingHandler) Average(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	avg, count, err := h.ratingUC.Average(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to average valoraciones", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	if count == 0 {
		c.JSON(http.StatusOK, gin.H{"message": msgSinValoraciones})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurante_id": id, "promedio_valoracion": avg})
}
