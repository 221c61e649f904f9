package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gymhub/internal/auth"
	"gymhub/internal/service"
)

const (
	ctxKeyMemberID   = "member_id"
	ctxKeyIsEnrolled = "is_enrolled"
)

// EnrollmentContext returns middleware that attaches the derived enrollment
// flag to every request: true iff the bearer of a valid token has at least
// one enrollment row, false for everyone else. The flag is request-scoped
// and never persisted.
func EnrollmentContext(jwtService *auth.JWTService, enrollments service.EnrollmentService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ctxKeyIsEnrolled, false)

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return next(c)
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				// Not this middleware's job to reject; the secured group does that.
				return next(c)
			}

			c.Set(ctxKeyMemberID, claims.MemberID)

			enrolled, err := enrollments.IsEnrolled(c.Request().Context(), claims.MemberID)
			if err == nil {
				c.Set(ctxKeyIsEnrolled, enrolled)
			}

			return next(c)
		}
	}
}

// IsEnrolled reads the derived enrollment flag for the current request.
func IsEnrolled(c echo.Context) bool {
	enrolled, _ := c.Get(ctxKeyIsEnrolled).(bool)
	return enrolled
}

// CurrentMemberID returns the authenticated member's ID from the validated
// token claims set by the secured route group.
func CurrentMemberID(c echo.Context) (uint, error) {
	if claims, ok := c.Get("user").(*auth.Claims); ok {
		return claims.MemberID, nil
	}
	// Fall back to the optional-auth context set by EnrollmentContext.
	if id, ok := c.Get(ctxKeyMemberID).(uint); ok {
		return id, nil
	}
	return 0, echo.NewHTTPError(http.StatusUnauthorized, "please login first")
}
