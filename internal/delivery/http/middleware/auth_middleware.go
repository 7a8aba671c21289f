package middleware

import (
	"strings"

	"homeplate/internal/delivery/http/response"
	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID is the echo.Context key under which the
	// authenticated user's ID is stored.
	ContextKeyUserID = "userID"
	// ContextKeyRoles is the echo.Context key under which the
	// authenticated user's role strings are stored.
	ContextKeyRoles = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrNotAuthenticated.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrNotAuthenticated.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrNotAuthenticated.ErrorCode(), "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roleStrings, ok := rolesVal.([]string)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}

			roles := entity.RolesFromStrings(roleStrings)
			// Admins pass every role gate.
			if !roles.Contains(requiredRole) && !roles.Contains(entity.RoleAdmin) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// UserIDFromContext extracts the authenticated user's ID set by Authenticate.
// Returns uuid.Nil when the request carries no authenticated user.
func UserIDFromContext(c echo.Context) uuid.UUID {
	if userID, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}
