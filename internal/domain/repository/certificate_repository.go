package repository

import (
	"context"

	"medconnect-api/internal/domain/entity"
)

type CertificateRepository interface {
	Create(ctx context.Context, certificate *entity.Certificate) error
	// FindAll preloads doctor, patient and diagnosis code for listings.
	FindAll(ctx context.Context) ([]entity.Certificate, error)
	FindByID(ctx context.Context, id uint) (*entity.Certificate, error)
	Update(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Certificate, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Certificate, error)
}
