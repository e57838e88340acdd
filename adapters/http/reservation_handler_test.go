package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reservafacil/reserva-api/internal/domain/reservation"
)

func (s *ApiTestSuite) Test_CreateReserva() {
	_, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")

	body := gin.H{
		"restaurante_id": restauranteID,
		"fecha_reserva":  time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"adultos":        2,
		"niños":          1,
		"trona":          true,
	}

	rr := s.request(http.MethodPost, "/api/usuario/reservas", body, token)

	s.Equal(http.StatusCreated, rr.Code)
	resp := s.decode(rr)
	s.Equal("Reserva creada con éxito", resp["message"])

	reserva := resp["reserva"].(map[string]any)
	s.Equal("activa", reserva["estado"])
	s.Equal(float64(2), reserva["adultos"])
}

// A party of zero adults with kids only is a legal booking.
func (s *ApiTestSuite) Test_CreateReserva_ZeroAdultsAccepted() {
	_, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")

	body := gin.H{
		"restaurante_id": restauranteID,
		"fecha_reserva":  time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"adultos":        0,
		"niños":          3,
		"trona":          false,
	}

	rr := s.request(http.MethodPost, "/api/usuario/reservas", body, token)

	s.Equal(http.StatusCreated, rr.Code)
}

func (s *ApiTestSuite) Test_CreateReserva_MissingFields() {
	_, token := s.seedUsuario("ana@example.com")

	rr := s.request(http.MethodPost, "/api/usuario/reservas", gin.H{"adultos": 2}, token)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("Faltan datos para crear la reserva", s.decode(rr)["error"])
}

func (s *ApiTestSuite) Test_ListReservas_OwnershipEnforced() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	s.seedUsuario("otro@example.com")

	own := s.request(http.MethodGet, fmt.Sprintf("/api/usuario/%d/reservas", usuarioID), nil, token)
	s.Equal(http.StatusOK, own.Code)

	foreign := s.request(http.MethodGet, "/api/usuario/2/reservas", nil, token)
	s.Equal(http.StatusForbidden, foreign.Code)
}

func (s *ApiTestSuite) Test_UpdateReserva_Partial() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")
	reservaID := s.seedReserva(usuarioID, restauranteID, 2, 0)

	rr := s.request(http.MethodPut, fmt.Sprintf("/api/reservas/%d", reservaID), gin.H{"adultos": 4}, token)

	s.Equal(http.StatusOK, rr.Code)
	reserva := s.decode(rr)["reserva"].(map[string]any)
	s.Equal(float64(4), reserva["adultos"])
	s.Equal(float64(0), reserva["niños"])
}

// A booking can only be edited by the usuario who made it.
func (s *ApiTestSuite) Test_UpdateReserva_ForbiddenForOtherUsuario() {
	usuarioID, _ := s.seedUsuario("ana@example.com")
	_, otherToken := s.seedUsuario("luis@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")
	reservaID := s.seedReserva(usuarioID, restauranteID, 2, 0)

	rr := s.request(http.MethodPut, fmt.Sprintf("/api/reservas/%d", reservaID), gin.H{"adultos": 4}, otherToken)

	s.Equal(http.StatusForbidden, rr.Code)
	s.Equal("No autorizado", s.decode(rr)["msg"])
}

func (s *ApiTestSuite) Test_CancelReserva_ForbiddenForOtherUsuario() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	_, otherToken := s.seedUsuario("luis@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")
	reservaID := s.seedReserva(usuarioID, restauranteID, 2, 1)

	rr := s.request(http.MethodDelete, fmt.Sprintf("/api/reservas/%d", reservaID), nil, otherToken)

	s.Equal(http.StatusForbidden, rr.Code)
	s.Equal("No autorizado", s.decode(rr)["msg"])

	list := s.request(http.MethodGet, fmt.Sprintf("/api/usuario/%d/reservas", usuarioID), nil, token)
	s.Contains(list.Body.String(), "activa")
}

func (s *ApiTestSuite) Test_UpdateReserva_NotFound() {
	_, token := s.seedUsuario("ana@example.com")

	rr := s.request(http.MethodPut, "/api/reservas/99", gin.H{"adultos": 4}, token)

	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("Reserva no encontrada", s.decode(rr)["error"])
}

// Cancelling keeps the row and flips estado, the reservation still shows up in
// the user's list.
func (s *ApiTestSuite) Test_CancelReserva_SoftDelete() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")
	reservaID := s.seedReserva(usuarioID, restauranteID, 2, 1)

	rr := s.request(http.MethodDelete, fmt.Sprintf("/api/reservas/%d", reservaID), nil, token)

	s.Equal(http.StatusOK, rr.Code)
	resp := s.decode(rr)
	s.Equal("Reserva cancelada con éxito", resp["message"])
	s.Equal("cancelada", resp["reserva"].(map[string]any)["estado"])

	list := s.request(http.MethodGet, fmt.Sprintf("/api/usuario/%d/reservas", usuarioID), nil, token)
	s.Equal(http.StatusOK, list.Code)
	s.Contains(list.Body.String(), "cancelada")
}

func (s *ApiTestSuite) seedReserva(usuarioID, restauranteID int64, adultos, ninos int) int64 {
	r := &reservation.Reservation{
		UsuarioID:     usuarioID,
		RestauranteID: restauranteID,
		FechaReserva:  time.Now().Add(24 * time.Hour).UTC(),
		Adultos:       adultos,
		Ninos:         ninos,
		Estado:        reservation.EstadoActiva,
	}
	s.Require().NoError(s.reservationRepo.Save(context.Background(), r))
	return r.ID
}
