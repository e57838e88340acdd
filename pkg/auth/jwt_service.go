package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	RoleUsuario     = "usuario"
	RoleRestaurante = "restaurante"
)

type JWTService struct {
	secretKey       []byte
	accessLifespan  time.Duration
	refreshLifespan time.Duration
}

type CustomClaims struct {
	SubjectID int64  `json:"subject_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, accessLifespan, refreshLifespan time.Duration) *JWTService {
	return &JWTService{
		secretKey:       []byte(secretKey),
		accessLifespan:  accessLifespan,
		refreshLifespan: refreshLifespan,
	}
}

func (s *JWTService) RefreshLifespan() time.Duration {
	return s.refreshLifespan
}

// GenerateAccessToken issues a short-lived token carrying the subject id and role.
func (s *JWTService) GenerateAccessToken(subjectID int64, role string) (string, error) {
	return s.generate(subjectID, role, TokenTypeAccess, s.accessLifespan, uuid.NewString())
}

// GenerateRefreshToken issues a long-lived token. The returned jti identifies it
// in the refresh-token store.
func (s *JWTService) GenerateRefreshToken(subjectID int64, role string) (string, string, error) {
	jti := uuid.NewString()
	token, err := s.generate(subjectID, role, TokenTypeRefresh, s.refreshLifespan, jti)
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

func (s *JWTService) generate(subjectID int64, role, tokenType string, lifespan time.Duration, jti string) (string, error) {
	claims := CustomClaims{
		SubjectID: subjectID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifespan)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%s:%d", role, subjectID),
			Issuer:    "reservafacil-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}
	return signedString, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature algorithm: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("error when parsing token claims")
}
