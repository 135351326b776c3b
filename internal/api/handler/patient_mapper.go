package handler

import "github.com/smarthealth/patient-api/internal/core/domain"

// toPatientResponse builds the redacted view of a patient record.
func toPatientResponse(p *domain.Patient) *patientResponse {
	if p == nil {
		return nil
	}
	return &patientResponse{
		ID:               p.ID,
		FullName:         p.FullName,
		Email:            p.Email,
		ContactNumber:    p.ContactNumber,
		DateOfBirth:      p.DateOfBirth,
		HealthCardNumber: p.HealthCardNumber,
		Active:           p.Active,
	}
}
