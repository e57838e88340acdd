package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	accountuc "github.com/reservafacil/reserva-api/internal/application/usecase/account"
	authuc "github.com/reservafacil/reserva-api/internal/application/usecase/auth"
	"github.com/reservafacil/reserva-api/internal/domain/account"
	"github.com/reservafacil/reserva-api/pkg/logger"
	"github.com/reservafacil/reserva-api/pkg/validate"
)

type AccountHandler struct {
	accountUC *accountuc.AccountUseCase
	authUC    *authuc.AuthUseCase
	logger    logger.Logger
}

func NewAccountHandler(accountUC *accountuc.AccountUseCase, authUC *authuc.AuthUseCase, log logger.Logger) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, authUC: authUC, logger: log}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Identificador no válido"})
		return 0, false
	}
	return id, true
}

// Signup registers a usuario. Field validation mirrors the public contract:
// every rule has its own fixed message.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Faltan datos"})
		return
	}

	if req.Email == "" || req.Password == "" || req.Nombres == "" || req.Apellidos == "" || req.Telefono == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Faltan datos"})
		return
	}
	if !validate.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El formato del email es incorrecto"})
		return
	}
	if !validate.Password(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "La contraseña debe tener entre 8 y 16 caracteres, al menos una mayúscula y un número"})
		return
	}
	if !validate.Phone(req.Telefono) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El formato del teléfono es incorrecto"})
		return
	}

	_, err := h.accountUC.Register(c.Request.Context(), accountuc.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Telefono:  req.Telefono,
	})
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"msg": "El usuario ya existe"})
			return
		}
		h.logger.Error("Failed to register usuario", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Usuario registrado con éxito"})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciales inválidas"})
		return
	}

	out, err := h.authUC.LoginUsuario(c.Request.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "El usuario no está registrado"})
		case errors.Is(err, authuc.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Contraseña incorrecta"})
		default:
			h.logger.Error("Failed to login usuario", err)
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

// Refresh exchanges the refresh token in the Authorization header for a new
// access token. The refresh token is not rotated.
func (h *AccountHandler) Refresh(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Falta el token de autorización"})
		return
	}

	accessToken, err := h.authUC.Refresh(c.Request.Context(), tokenString)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token de refresco inválido"})
			return
		}
		h.logger.Error("Failed to refresh token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *AccountHandler) Logout(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Falta el token de autorización"})
		return
	}

	if err := h.authUC.Logout(c.Request.Context(), tokenString); err != nil {
		if errors.Is(err, authuc.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token de refresco inválido"})
			return
		}
		h.logger.Error("Failed to logout", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Sesión cerrada con éxito"})
}

// Protected returns the profile of the authenticated usuario.
func (h *AccountHandler) Protected(c *gin.Context) {
	subjectID, _, ok := GetSubjectFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token inválido o caducado"})
		return
	}

	a, err := h.accountUC.Get(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Usuario no encontrado"})
			return
		}
		h.logger.Error("Failed to load usuario", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, ToUsuarioDTO(a))
}

func (h *AccountHandler) ValidateToken(c *gin.Context) {
	subjectID, _, ok := GetSubjectFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token inválido o caducado"})
		return
	}

	a, err := h.accountUC.Get(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Usuario no encontrado"})
			return
		}
		h.logger.Error("Failed to load usuario", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Token válido", "user_id": a.ID, "email": a.Email})
}

func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountUC.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list usuarios", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	dtos := make([]UsuarioDTO, 0, len(accounts))
	for _, a := range accounts {
		dtos = append(dtos, ToUsuarioDTO(a))
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	a, err := h.accountUC.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Usuario no encontrado"})
			return
		}
		h.logger.Error("Failed to load usuario", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, ToUsuarioDTO(a))
}

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Faltan datos"})
		return
	}

	if req.Email != nil && !validate.Email(*req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El formato del email es incorrecto"})
		return
	}
	if req.Password != nil && !validate.Password(*req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "La contraseña debe tener entre 8 y 16 caracteres, al menos una mayúscula y un número"})
		return
	}
	if req.Telefono != nil && !validate.Phone(*req.Telefono) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El formato del teléfono es incorrecto"})
		return
	}

	_, err := h.accountUC.Update(c.Request.Context(), accountuc.UpdateInput{
		ID:        id,
		Email:     req.Email,
		Password:  req.Password,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Telefono:  req.Telefono,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Usuario no encontrado"})
		case errors.Is(err, account.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"msg": "El usuario ya existe"})
		default:
			h.logger.Error("Failed to update usuario", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Usuario actualizado con éxito"})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.accountUC.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Usuario no encontrado"})
			return
		}
		h.logger.Error("Failed to delete usuario", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Usuario eliminado con éxito"})
}
