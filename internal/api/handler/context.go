package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthealth/patient-api/internal/api/middleware"
	"github.com/smarthealth/patient-api/internal/core/domain"
)

// currentPatient extracts the patient record injected by the Auth
// middleware. Its absence means the middleware did not run or the route is
// misconfigured; reject rather than proceed with no identity.
func currentPatient(c echo.Context) (*domain.Patient, error) {
	patient, _ := c.Get(middleware.PatientContextKey).(*domain.Patient)
	if patient == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return patient, nil
}
