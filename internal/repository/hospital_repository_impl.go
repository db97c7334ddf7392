package repository

import (
	"context"
	"errors"

	"medconnect-api/internal/domain/entity"
	domainRepo "medconnect-api/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) domainRepo.HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepository) FindAll(ctx context.Context) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	if err := r.db.WithContext(ctx).Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByID(ctx context.Context, id uint) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := r.db.WithContext(ctx).First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) Update(ctx context.Context, hospital *entity.Hospital) error {
	return r.db.WithContext(ctx).Save(hospital).Error
}

func (r *hospitalRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Doctors keep existing when their hospital goes away.
		if err := tx.Model(&entity.Doctor{}).Where("hospital_id = ?", id).Update("hospital_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Hospital{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

func (r *hospitalRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Hospital{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
