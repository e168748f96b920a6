package middleware

import (
	"strings"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/labstack/echo/v4"
)

// IdentityKey stores the verified auth.Identity in the Echo context.
const IdentityKey = "identity"

// TokenVerifier checks an access token and returns its identity.
type TokenVerifier interface {
	VerifyAccessToken(token string) (auth.Identity, error)
}

// AuthMiddleware verifies bearer access tokens.
type AuthMiddleware struct {
	server *server.Server
	tokens TokenVerifier
}

func NewAuthMiddleware(s *server.Server, tokens TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: tokens,
	}
}

// RequireAuth rejects requests without a valid access token.
//
//   - missing or non-Bearer Authorization header: 401
//   - bad signature or expired token: 403
//
// On success the identity is stored in the Echo context and the request
// logger gains user_id and user_role.
func (a *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return errs.NewUnauthorizedError("Missing or malformed authorization header", true)
		}

		identity, err := a.tokens.VerifyAccessToken(strings.TrimSpace(token))
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("token verification failed")
			return errs.NewForbiddenError("Invalid or expired token", true)
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.UserID)
		c.Set(UserRoleKey, identity.Role)

		logger := GetLogger(c).With().
			Str("user_id", identity.UserID).
			Str("user_role", identity.Role).
			Logger()
		c.Set(LoggerKey, &logger)

		logger.Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

// RequireAdmin is RequireAuth plus a role check; non-admins get 403.
func (a *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return a.RequireAuth(func(c echo.Context) error {
		identity, _ := GetIdentity(c)
		if !identity.IsAdmin() {
			return errs.NewForbiddenError("Admin access required", true)
		}
		return next(c)
	})
}

// GetIdentity returns the identity set by RequireAuth.
func GetIdentity(c echo.Context) (auth.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(auth.Identity)
	return identity, ok
}
