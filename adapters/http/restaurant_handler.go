package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authuc "github.com/reservafacil/reserva-api/internal/application/usecase/auth"
	restaurantuc "github.com/reservafacil/reserva-api/internal/application/usecase/restaurant"
	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
	"github.com/reservafacil/reserva-api/pkg/logger"
	"github.com/reservafacil/reserva-api/pkg/validate"
)

type RestaurantHandler struct {
	restaurantUC *restaurantuc.RestaurantUseCase
	authUC       *authuc.AuthUseCase
	logger       logger.Logger
}

func NewRestaurantHandler(restaurantUC *restaurantuc.RestaurantUseCase, authUC *authuc.AuthUseCase, log logger.Logger) *RestaurantHandler {
	return &RestaurantHandler{restaurantUC: restaurantUC, authUC: authUC, logger: log}
}

// Signup registers a restaurant. Password is optional, seeded restaurants
// never log in.
func (h *RestaurantHandler) Signup(c *gin.Context) {
	var req SignupRestauranteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Faltan datos obligatorios"})
		return
	}

	if req.Nombre == "" || req.Email == "" || req.Direccion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Faltan datos obligatorios"})
		return
	}
	if req.Password != "" && !validate.Password(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "La contraseña debe tener entre 8 y 16 caracteres, al menos una mayúscula y un número"})
		return
	}

	_, err := h.restaurantUC.Register(c.Request.Context(), restaurantuc.RegisterInput{
		Nombre:         req.Nombre,
		Email:          req.Email,
		Password:       req.Password,
		Direccion:      req.Direccion,
		Latitud:        req.Latitud,
		Longitud:       req.Longitud,
		Telefono:       req.Telefono,
		Cubiertos:      req.Cubiertos,
		CantidadMesas:  req.CantidadMesas,
		FranjaHoraria:  req.FranjaHoraria,
		ReservasPorDia: req.ReservasPorDia,
		CategoriasID:   req.CategoriasID,
	})
	if err != nil {
		if errors.Is(err, restaurant.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"msg": "El restaurante ya existe"})
			return
		}
		h.logger.Error("Failed to register restaurante", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Restaurante registrado con éxito"})
}

func (h *RestaurantHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciales inválidas"})
		return
	}

	out, err := h.authUC.LoginRestaurante(c.Request.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, restaurant.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "El restaurante no está registrado"})
		case errors.Is(err, authuc.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Contraseña incorrecta"})
		default:
			h.logger.Error("Failed to login restaurante", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  out.AccessToken,
		"refresh_token": out.RefreshToken,
		"user_name":     out.UserName,
	})
}

func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantUC.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list restaurantes", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	dtos := make([]RestauranteDTO, 0, len(restaurants))
	for _, r := range restaurants {
		dtos = append(dtos, ToRestauranteDTO(r))
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	r, err := h.restaurantUC.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Restaurante no encontrado"})
			return
		}
		h.logger.Error("Failed to load restaurante", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, ToRestauranteDTO(r))
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateRestauranteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Faltan datos obligatorios"})
		return
	}
	if req.Password != nil && !validate.Password(*req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "La contraseña debe tener entre 8 y 16 caracteres, al menos una mayúscula y un número"})
		return
	}

	_, err := h.restaurantUC.Update(c.Request.Context(), restaurantuc.UpdateInput{
		ID:             id,
		Nombre:         req.Nombre,
		Email:          req.Email,
		Password:       req.Password,
		Direccion:      req.Direccion,
		Latitud:        req.Latitud,
		Longitud:       req.Longitud,
		Telefono:       req.Telefono,
		Cubiertos:      req.Cubiertos,
		CantidadMesas:  req.CantidadMesas,
		FranjaHoraria:  req.FranjaHoraria,
		ReservasPorDia: req.ReservasPorDia,
		Valoracion:     req.Valoracion,
		CategoriasID:   req.CategoriasID,
		Image:          req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, restaurant.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Restaurante no encontrado"})
		case errors.Is(err, restaurant.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"msg": "El restaurante ya existe"})
		default:
			h.logger.Error("Failed to update restaurante", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Restaurante actualizado con éxito"})
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.restaurantUC.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Restaurante no encontrado"})
			return
		}
		h.logger.Error("Failed to delete restaurante", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Restaurante eliminado con éxito"})
}

// Seed loads the demo restaurant catalogue. All or nothing, the repo runs it
// in one transaction.
func (h *RestaurantHandler) Seed(c *gin.Context) {
	if err := h.restaurantUC.Seed(c.Request.Context()); err != nil {
		h.logger.Error("Failed to seed restaurantes", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Restaurantes cargados a la base de datos con éxito"})
}
