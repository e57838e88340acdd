package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reservafacil/reserva-api/pkg/auth"
)

const (
	ginContextKeySubjectID = "subjectID"
	ginContextKeyRole      = "role"
)

// AuthMiddleware requires a valid access token and stores the caller identity
// on the gin context.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Falta el token de autorización"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil || claims.TokenType != auth.TokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token inválido o caducado"})
			return
		}

		c.Set(ginContextKeySubjectID, claims.SubjectID)
		c.Set(ginContextKeyRole, claims.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", false
	}
	return tokenString, true
}

func GetSubjectFromGinContext(c *gin.Context) (int64, string, bool) {
	rawID, ok := c.Get(ginContextKeySubjectID)
	if !ok {
		return 0, "", false
	}
	subjectID, ok := rawID.(int64)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Get(ginContextKeyRole)
	roleString, ok := role.(string)
	if !ok {
		return 0, "", false
	}
	return subjectID, roleString, true
}

// requireOwnUsuario aborts with 403 unless the authenticated caller is the
// usuario identified by the :id path parameter.
func requireOwnUsuario(c *gin.Context, usuarioID int64) bool {
	subjectID, role, ok := GetSubjectFromGinContext(c)
	if !ok || role != auth.RoleUsuario || subjectID != usuarioID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "No autorizado"})
		return false
	}
	return true
}
