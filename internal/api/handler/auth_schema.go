package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	FullName         string `json:"full_name"          validate:"required"`
	Email            string `json:"email"              validate:"required,email"`
	Password         string `json:"password"           validate:"required,min=8"`
	ContactNumber    string `json:"contact_number"`
	DateOfBirth      string `json:"date_of_birth"`
	HealthCardNumber string `json:"health_card_number"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// patientResponse is the redacted patient view. The stored secret never
// appears here.
type patientResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	ContactNumber    string `json:"contact_number,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	HealthCardNumber string `json:"health_card_number,omitempty"`
	Active           bool   `json:"active"`
}

type authResponse struct {
	Token   string           `json:"token,omitempty"`
	Patient *patientResponse `json:"patient,omitempty"`
}
