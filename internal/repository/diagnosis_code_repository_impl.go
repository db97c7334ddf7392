package repository

import (
	"context"
	"errors"

	"medconnect-api/internal/domain/entity"
	domainRepo "medconnect-api/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnosisCodeRepository struct {
	db *gorm.DB
}

func NewDiagnosisCodeRepository(db *gorm.DB) domainRepo.DiagnosisCodeRepository {
	return &diagnosisCodeRepository{db: db}
}

func (r *diagnosisCodeRepository) Create(ctx context.Context, code *entity.DiagnosisCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *diagnosisCodeRepository) FindAll(ctx context.Context) ([]entity.DiagnosisCode, error) {
	var codes []entity.DiagnosisCode
	if err := r.db.WithContext(ctx).Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *diagnosisCodeRepository) FindByID(ctx context.Context, id uint) (*entity.DiagnosisCode, error) {
	var code entity.DiagnosisCode
	err := r.db.WithContext(ctx).First(&code, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *diagnosisCodeRepository) Update(ctx context.Context, code *entity.DiagnosisCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

func (r *diagnosisCodeRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.DiagnosisCode{}, id)
	return result.RowsAffected, result.Error
}
