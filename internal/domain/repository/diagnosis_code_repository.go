package repository

import (
	"context"

	"medconnect-api/internal/domain/entity"
)

type DiagnosisCodeRepository interface {
	Create(ctx context.Context, code *entity.DiagnosisCode) error
	FindAll(ctx context.Context) ([]entity.DiagnosisCode, error)
	FindByID(ctx context.Context, id uint) (*entity.DiagnosisCode, error)
	Update(ctx context.Context, code *entity.DiagnosisCode) error
	Delete(ctx context.Context, id uint) (int64, error)
}
