package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/response"
	"github.com/reusemart/consignment-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

const TokenCookieName = "token"

// Authenticate accepts any valid session token regardless of role.
func Authenticate(jwtSecret string) echo.MiddlewareFunc {
	return VerifyUserRole(jwtSecret)
}

// VerifyUserRole rejects requests without a valid session token with 401 and
// requests whose role is not in allowedRoles with 403. An empty allowedRoles
// admits every role. The claims are stored under utils.ContextKeyUser.
func VerifyUserRole(jwtSecret string, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c.Request())
			if token == "" {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, "")
			}

			claims, err := utils.ParseJWTToken(token, jwtSecret)
			if err != nil {
				log.Ctx(c.Request().Context()).Debug().Err(err).Str("component", "VerifyUserRole").Msg("")
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, "")
			}

			// Verification links are not sessions.
			if claims.Purpose != "" {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, "")
			}

			if len(allowedRoles) > 0 && !contains(allowedRoles, claims.Role) {
				return response.WriteErrorResponse(c, errs.ErrForbidden, "")
			}

			c.Set(utils.ContextKeyUser, claims)

			return next(c)
		}
	}
}

// tokenFromRequest prefers the Authorization bearer token over the cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
