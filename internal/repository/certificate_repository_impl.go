package repository

import (
	"context"
	"errors"

	"medconnect-api/internal/domain/entity"
	domainRepo "medconnect-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) domainRepo.CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *certificateRepository) FindAll(ctx context.Context) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := r.db.WithContext(ctx).Preload("Doctor").Preload("Patient").Preload("DiagnosisCode").Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) FindByID(ctx context.Context, id uint) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := r.db.WithContext(ctx).Preload("Doctor").Preload("Patient").Preload("DiagnosisCode").First(&certificate, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}

// Update writes the row only. Skipping associations keeps a preloaded Doctor,
// Patient or DiagnosisCode from overwriting a changed FK with its own stale
// primary key.
func (r *certificateRepository) Update(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(certificate).Error
}

func (r *certificateRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Certificate{}, id)
	return result.RowsAffected, result.Error
}

func (r *certificateRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := r.db.WithContext(ctx).Where("medico_id = ?", doctorID).Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := r.db.WithContext(ctx).Where("paciente_id = ?", patientID).Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}
