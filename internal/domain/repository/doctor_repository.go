package repository

import (
	"context"

	"medconnect-api/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uint) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	// Delete removes the doctor's consultations and certificates before the
	// medico row itself, all in one transaction. Returns the number of
	// medico rows removed.
	Delete(ctx context.Context, id uint) (int64, error)
}
