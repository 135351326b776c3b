package ports

import (
	"context"

	"github.com/smarthealth/patient-api/internal/core/domain"
)

// PatientRepository defines the persistence contract for patient accounts.
// Email is the unique business key; the storage layer must enforce
// uniqueness so that Create fails with domain.ErrDuplicateEmail even when
// two registrations race past the ExistsByEmail pre-check.
type PatientRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.Patient, error)
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
}
