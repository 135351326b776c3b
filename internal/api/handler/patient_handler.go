package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type PatientHandler struct{}

func NewPatientHandler() *PatientHandler {
	return &PatientHandler{}
}

// Me returns the redacted record of the authenticated patient.
//
// @Summary      Current patient
// @Tags         patients
// @Produce      json
// @Success      200  {object}  patientResponse
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /patients/me [get]
func (h *PatientHandler) Me(c echo.Context) error {
	patient, err := currentPatient(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientResponse(patient))
}
