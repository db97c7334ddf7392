package repository

import (
	"context"
	"errors"

	"medconnect-api/internal/domain/entity"
	domainRepo "medconnect-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) domainRepo.ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) FindAll(ctx context.Context) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := r.db.WithContext(ctx).Preload("Doctor").Preload("Patient").Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id uint) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := r.db.WithContext(ctx).Preload("Doctor").Preload("Patient").First(&consultation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

// Update writes the row only. Skipping associations keeps a preloaded Doctor
// or Patient from overwriting a changed medico_id/paciente_id with its own
// stale primary key.
func (r *consultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(consultation).Error
}

func (r *consultationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Consultation{}, id)
	return result.RowsAffected, result.Error
}

func (r *consultationRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := r.db.WithContext(ctx).Where("medico_id = ?", doctorID).Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := r.db.WithContext(ctx).Where("paciente_id = ?", patientID).Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}
