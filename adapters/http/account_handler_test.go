package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *ApiTestSuite) Test_Signup_CreatesAccount() {
	body := gin.H{
		"email":     "ana@example.com",
		"password":  "Segura123",
		"nombres":   "Ana",
		"apellidos": "García",
		"telefono":  "600112233",
	}

	rr := s.request(http.MethodPost, "/api/signup", body, "")

	s.Equal(http.StatusCreated, rr.Code)
	s.Equal("Usuario registrado con éxito", s.decode(rr)["msg"])
}

func (s *ApiTestSuite) Test_Signup_DuplicateEmailConflicts() {
	body := gin.H{
		"email":     "ana@example.com",
		"password":  "Segura123",
		"nombres":   "Ana",
		"apellidos": "García",
		"telefono":  "600112233",
	}

	first := s.request(http.MethodPost, "/api/signup", body, "")
	s.Equal(http.StatusCreated, first.Code)

	second := s.request(http.MethodPost, "/api/signup", body, "")
	s.Equal(http.StatusConflict, second.Code)
	s.Equal("El usuario ya existe", s.decode(second)["msg"])
}

func (s *ApiTestSuite) Test_Signup_MissingFields() {
	rr := s.request(http.MethodPost, "/api/signup", gin.H{"email": "ana@example.com"}, "")

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("Faltan datos", s.decode(rr)["msg"])
}

func (s *ApiTestSuite) Test_Signup_RejectsWeakPassword() {
	body := gin.H{
		"email":     "ana@example.com",
		"password":  "sinmayuscula1",
		"nombres":   "Ana",
		"apellidos": "García",
		"telefono":  "600112233",
	}

	rr := s.request(http.MethodPost, "/api/signup", body, "")

	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *ApiTestSuite) Test_Login_Flow() {
	s.seedUsuario("ana@example.com")

	unknown := s.request(http.MethodPost, "/api/login", gin.H{"email": "nadie@example.com", "password": "Segura123"}, "")
	s.Equal(http.StatusNotFound, unknown.Code)
	s.Equal("El usuario no está registrado", s.decode(unknown)["msg"])

	badPass := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Mala12345"}, "")
	s.Equal(http.StatusUnauthorized, badPass.Code)
	s.Equal("Contraseña incorrecta", s.decode(badPass)["msg"])

	ok := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Segura123"}, "")
	s.Equal(http.StatusOK, ok.Code)

	resp := s.decode(ok)
	s.NotEmpty(resp["access_token"])
	s.NotEmpty(resp["refresh_token"])
	s.Equal("Ana", resp["user_name"])
}

func (s *ApiTestSuite) Test_Refresh_IssuesNewAccessToken() {
	s.seedUsuario("ana@example.com")

	login := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Segura123"}, "")
	s.Equal(http.StatusOK, login.Code)
	tokens := s.decode(login)

	rr := s.request(http.MethodPost, "/api/refresh", nil, tokens["refresh_token"].(string))
	s.Equal(http.StatusOK, rr.Code)
	s.NotEmpty(s.decode(rr)["access_token"])

	// The refresh token is not rotated, a second exchange still works.
	again := s.request(http.MethodPost, "/api/refresh", nil, tokens["refresh_token"].(string))
	s.Equal(http.StatusOK, again.Code)
}

func (s *ApiTestSuite) Test_Refresh_RejectsAccessToken() {
	s.seedUsuario("ana@example.com")

	login := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Segura123"}, "")
	tokens := s.decode(login)

	rr := s.request(http.MethodPost, "/api/refresh", nil, tokens["access_token"].(string))

	s.Equal(http.StatusUnauthorized, rr.Code)
	s.Equal("Token de refresco inválido", s.decode(rr)["msg"])
}

func (s *ApiTestSuite) Test_Logout_RevokesRefreshToken() {
	s.seedUsuario("ana@example.com")

	login := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Segura123"}, "")
	tokens := s.decode(login)
	refreshToken := tokens["refresh_token"].(string)

	logout := s.request(http.MethodPost, "/api/logout", nil, refreshToken)
	s.Equal(http.StatusOK, logout.Code)

	rr := s.request(http.MethodPost, "/api/refresh", nil, refreshToken)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *ApiTestSuite) Test_Protected_RequiresToken() {
	noToken := s.request(http.MethodGet, "/api/protected", nil, "")
	s.Equal(http.StatusUnauthorized, noToken.Code)

	id, token := s.seedUsuario("ana@example.com")

	rr := s.request(http.MethodGet, "/api/protected", nil, token)
	s.Equal(http.StatusOK, rr.Code)

	resp := s.decode(rr)
	s.Equal(float64(id), resp["id"])
	s.Equal("ana@example.com", resp["email"])
}

func (s *ApiTestSuite) Test_ValidateToken() {
	id, token := s.seedUsuario("ana@example.com")

	rr := s.request(http.MethodGet, "/api/validate-token", nil, token)

	s.Equal(http.StatusOK, rr.Code)
	resp := s.decode(rr)
	s.Equal("Token válido", resp["msg"])
	s.Equal(float64(id), resp["user_id"])
}

func (s *ApiTestSuite) Test_UpdateUsuario_PartialAndRehash() {
	_, token := s.seedUsuario("ana@example.com")

	rr := s.request(http.MethodPut, "/api/usuario/1", gin.H{"nombres": "Marta", "password": "Nueva1234"}, token)
	s.Equal(http.StatusOK, rr.Code)

	get := s.request(http.MethodGet, "/api/usuario/1", nil, token)
	s.Equal(http.StatusOK, get.Code)
	resp := s.decode(get)
	s.Equal("Marta", resp["nombres"])
	s.Equal("ana@example.com", resp["email"])

	// the new password works, the old one no longer does
	oldPass := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Segura123"}, "")
	s.Equal(http.StatusUnauthorized, oldPass.Code)

	newPass := s.request(http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "Nueva1234"}, "")
	s.Equal(http.StatusOK, newPass.Code)
}

func (s *ApiTestSuite) Test_DeleteUsuario() {
	_, token := s.seedUsuario("ana@example.com")

	rr := s.request(http.MethodDelete, "/api/usuario/1", nil, token)
	s.Equal(http.StatusOK, rr.Code)

	gone := s.request(http.MethodGet, "/api/usuario/1", nil, token)
	s.Equal(http.StatusNotFound, gone.Code)
	s.Equal("Usuario no encontrado", s.decode(gone)["msg"])
}
