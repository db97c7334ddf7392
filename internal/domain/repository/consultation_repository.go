package repository

import (
	"context"

	"medconnect-api/internal/domain/entity"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	// FindAll preloads the doctor and patient so listings can show their names.
	FindAll(ctx context.Context) ([]entity.Consultation, error)
	FindByID(ctx context.Context, id uint) (*entity.Consultation, error)
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Consultation, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Consultation, error)
}
