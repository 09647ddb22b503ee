package middleware

import (
	"strings"

	"raseed/config"
	deliverycontext "raseed/internal/delivery/context"
	"raseed/internal/delivery/http/response"
	"raseed/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_HEADER_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTH_FORMAT_INVALID", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "TOKEN_INVALID", "Failed to parse token claims")
		}

		// Refresh tokens never authorize API calls.
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Access token required")
		}

		adminIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "TOKEN_INVALID", "Admin ID missing from token")
		}
		adminID, err := uuid.Parse(adminIDStr)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid admin ID format in token")
		}

		// Set the admin identity on the context for handlers to use
		c.Set(string(deliverycontext.KeyAdminID), adminID)

		return next(c)
	}
}
