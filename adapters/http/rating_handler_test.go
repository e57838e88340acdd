package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *ApiTestSuite) Test_AddValoracion() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")

	body := gin.H{"restaurante_id": restauranteID, "puntuacion": 4, "comentario": "Muy rico"}
	rr := s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID), body, token)

	s.Equal(http.StatusCreated, rr.Code)
	resp := s.decode(rr)
	s.Equal("Valoración creada con éxito", resp["message"])
	s.Equal(float64(4), resp["valoracion"].(map[string]any)["puntuacion"])
}

func (s *ApiTestSuite) Test_AddValoracion_SecondOneRejected() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")
	body := gin.H{"restaurante_id": restauranteID, "puntuacion": 4, "comentario": "Muy rico"}

	first := s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID), body, token)
	s.Equal(http.StatusCreated, first.Code)

	second := s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID), body, token)
	s.Equal(http.StatusBadRequest, second.Code)
	s.Equal("Ya has valorado este restaurante", s.decode(second)["error"])
}

func (s *ApiTestSuite) Test_UpdateValoracion() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")

	absent := s.request(http.MethodPut, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID),
		gin.H{"restaurante_id": restauranteID, "puntuacion": 5, "comentario": "Mejor aún"}, token)
	s.Equal(http.StatusNotFound, absent.Code)

	s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID),
		gin.H{"restaurante_id": restauranteID, "puntuacion": 3, "comentario": "Bien"}, token)

	rr := s.request(http.MethodPut, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID),
		gin.H{"restaurante_id": restauranteID, "puntuacion": 5, "comentario": "Mejor aún"}, token)

	s.Equal(http.StatusOK, rr.Code)
	resp := s.decode(rr)
	s.Equal("Valoración actualizada con éxito", resp["message"])
	s.Equal(float64(5), resp["valoracion"].(map[string]any)["puntuacion"])
}

func (s *ApiTestSuite) Test_DeleteValoracion() {
	usuarioID, token := s.seedUsuario("ana@example.com")
	restauranteID := s.seedRestaurante("terraza@example.com")

	absent := s.request(http.MethodDelete, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID),
		gin.H{"restaurante_id": restauranteID}, token)
	s.Equal(http.StatusNotFound, absent.Code)
	s.Equal("No existe una valoración para este restaurante", s.decode(absent)["error"])

	s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID),
		gin.H{"restaurante_id": restauranteID, "puntuacion": 3, "comentario": ""}, token)

	rr := s.request(http.MethodDelete, fmt.Sprintf("/api/usuario/%d/valoraciones", usuarioID),
		gin.H{"restaurante_id": restauranteID}, token)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("Valoración eliminada con éxito", s.decode(rr)["message"])
}

func (s *ApiTestSuite) Test_ListValoraciones_EmptyAnswersMessage() {
	restauranteID := s.seedRestaurante("terraza@example.com")

	rr := s.request(http.MethodGet, fmt.Sprintf("/api/restaurante/%d/valoracion", restauranteID), nil, "")

	s.Equal(http.StatusOK, rr.Code)
	s.Equal("Este restaurante no tiene valoraciones", s.decode(rr)["message"])
}

// With no ratings the endpoint answers the fixed message, never a zero average.
func (s *ApiTestSuite) Test_Promedio() {
	restauranteID := s.seedRestaurante("terraza@example.com")

	empty := s.request(http.MethodGet, fmt.Sprintf("/api/restaurante/%d/valoracion_promedio", restauranteID), nil, "")
	s.Equal(http.StatusOK, empty.Code)
	s.Equal("Este restaurante no tiene valoraciones", s.decode(empty)["message"])

	anaID, anaToken := s.seedUsuario("ana@example.com")
	luisID, luisToken := s.seedUsuario("luis@example.com")
	s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", anaID),
		gin.H{"restaurante_id": restauranteID, "puntuacion": 5, "comentario": ""}, anaToken)
	s.request(http.MethodPost, fmt.Sprintf("/api/usuario/%d/valoraciones", luisID),
		gin.H{"restaurante_id": restauranteID, "puntuacion": 2, "comentario": ""}, luisToken)

	rr := s.request(http.MethodGet, fmt.Sprintf("/api/restaurante/%d/valoracion_promedio", restauranteID), nil, "")

	s.Equal(http.StatusOK, rr.Code)
	resp := s.decode(rr)
	s.Equal(float64(restauranteID), resp["restaurante_id"])
	s.InDelta(3.5, resp["promedio_valoracion"], 0.001)
}
