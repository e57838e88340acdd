package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reservationuc "github.com/reservafacil/reserva-api/internal/application/usecase/reservation"
	"github.com/reservafacil/reserva-api/internal/domain/reservation"
	"github.com/reservafacil/reserva-api/pkg/auth"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type ReservationHandler struct {
	reservationUC *reservationuc.ReservationUseCase
	logger        logger.Logger
}

func NewReservationHandler(reservationUC *reservationuc.ReservationUseCase, log logger.Logger) *ReservationHandler {
	return &ReservationHandler{reservationUC: reservationUC, logger: log}
}

// Create books a table for the authenticated usuario. The binding tags reject
// a missing field but still accept adultos 0 and trona false.
func (h *ReservationHandler) Create(c *gin.Context) {
	subjectID, role, ok := GetSubjectFromGinContext(c)
	if !ok || role != auth.RoleUsuario {
		c.JSON(http.StatusForbidden, gin.H{"msg": "No autorizado"})
		return
	}

	var req CreateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para crear la reserva"})
		return
	}

	r, err := h.reservationUC.Create(c.Request.Context(), reservationuc.CreateInput{
		UsuarioID:     subjectID,
		RestauranteID: *req.RestauranteID,
		FechaReserva:  *req.FechaReserva,
		Adultos:       *req.Adultos,
		Ninos:         *req.Ninos,
		Trona:         *req.Trona,
	})
	if err != nil {
		h.logger.Error("Failed to create reserva", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reserva creada con éxito", "reserva": ToReservaDTO(r)})
}

// ListByUsuario returns the caller's reservations, cancelled ones included.
func (h *ReservationHandler) ListByUsuario(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !requireOwnUsuario(c, id) {
		return
	}

	reservations, err := h.reservationUC.ListByUsuario(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list reservas", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	dtos := make([]ReservaDTO, 0, len(reservations))
	for _, r := range reservations {
		dtos = append(dtos, ToReservaDTO(r))
	}
	c.JSON(http.StatusOK, dtos)
}

// requireOwnReserva loads the reservation and aborts unless the caller is the
// usuario who booked it. Missing reservations answer 404 before any auth check.
func (h *ReservationHandler) requireOwnReserva(c *gin.Context, id int64) bool {
	r, err := h.reservationUC.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
			return false
		}
		h.logger.Error("Failed to load reserva", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return false
	}

	subjectID, role, ok := GetSubjectFromGinContext(c)
	if !ok || role != auth.RoleUsuario || r.UsuarioID != subjectID {
		c.JSON(http.StatusForbidden, gin.H{"msg": "No autorizado"})
		return false
	}
	return true
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireOwnReserva(c, id) {
		return
	}

	var req UpdateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos para actualizar la reserva"})
		return
	}

	r, err := h.reservationUC.Update(c.Request.Context(), reservationuc.UpdateInput{
		ID:           id,
		FechaReserva: req.FechaReserva,
		Adultos:      req.Adultos,
		Ninos:        req.Ninos,
	})
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
			return
		}
		h.logger.Error("Failed to update reserva", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reserva actualizada con éxito", "reserva": ToReservaDTO(r)})
}

// Cancel marks the reservation cancelada. The row stays.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireOwnReserva(c, id) {
		return
	}

	r, err := h.reservationUC.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
			return
		}
		h.logger.Error("Failed to cancel reserva", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reserva cancelada con éxito", "reserva": ToReservaDTO(r)})
}
