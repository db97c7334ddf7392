package repository

import (
	"context"

	"medconnect-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	// Delete removes the patient's consultations and certificates before the
	// paciente row itself, all in one transaction. Returns the number of
	// paciente rows removed.
	Delete(ctx context.Context, id uint) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
