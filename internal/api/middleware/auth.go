package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smarthealth/patient-api/internal/api/metrics"
	"github.com/smarthealth/patient-api/internal/core/domain"
	"github.com/smarthealth/patient-api/internal/core/ports"
)

// PatientContextKey is where Auth stores the resolved patient record.
const PatientContextKey = "patient"

// Auth extracts the bearer token from the Authorization header, resolves the
// calling identity through the auth service, and injects the patient record
// into the request context. The record is re-read from the repository on
// every request; a valid token for a deleted account is rejected.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthResolutionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingCredential.Error())
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthResolutionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingCredential.Error())
			}

			patient, err := authService.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.AuthResolutionsTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				// Repository failure, not a credential problem.
				metrics.AuthResolutionsTotal.WithLabelValues("error").Inc()
				return err
			}

			metrics.AuthResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set(PatientContextKey, patient)

			return next(c)
		}
	}
}
