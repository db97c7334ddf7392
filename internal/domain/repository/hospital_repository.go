package repository

import (
	"context"

	"medconnect-api/internal/domain/entity"
)

type HospitalRepository interface {
	Create(ctx context.Context, hospital *entity.Hospital) error
	FindAll(ctx context.Context) ([]entity.Hospital, error)
	FindByID(ctx context.Context, id uint) (*entity.Hospital, error)
	Update(ctx context.Context, hospital *entity.Hospital) error
	// Delete nulls out medico.hospital_id references and removes the row
	// in one transaction. Returns the number of hospital rows removed.
	Delete(ctx context.Context, id uint) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
