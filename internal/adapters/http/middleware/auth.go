package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

type AuthMiddleware struct {
	signer usecase.JWTSigner
}

func NewAuthMiddleware(signer usecase.JWTSigner) *AuthMiddleware {
	return &AuthMiddleware{signer: signer}
}

// Handler requires a valid bearer token and stores the subject, email and
// user type on the request context.
func (m *AuthMiddleware) Handler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "missing token", requestIDFromCtx(c))
		}
		tok, claims, err := m.signer.Parse(parts[1])
		if err != nil || tok == nil || !tok.Valid {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "invalid token", requestIDFromCtx(c))
		}
		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		userType, _ := claims["user_type"].(string)
		if sub == "" {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "subject missing", requestIDFromCtx(c))
		}
		c.Set("user_id", sub)
		c.Set("email", email)
		c.Set("user_type", userType)
		return next(c)
	}
}

// RequireRole gates a route to one account role. It must run after Handler.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userType, _ := c.Get("user_type").(string); userType != role {
				return res.ErrorJSON(c, http.StatusForbidden, "forbidden", "insufficient role", requestIDFromCtx(c))
			}
			return next(c)
		}
	}
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
