package usecase

import (
	"context"
	"errors"
	"time"

	"medconnect-api/internal/converter"
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
	"medconnect-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error)
	GetAllConsultations(ctx context.Context) (*dto.ConsultationListResponse, error)
	UpdateConsultation(ctx context.Context, id uint, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, id uint) error
}

type consultationUsecase struct {
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
}

func NewConsultationUsecase(log *logrus.Logger, consultationRepo repository.ConsultationRepository) ConsultationUsecase {
	return &consultationUsecase{
		log:              log,
		consultationRepo: consultationRepo,
	}
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	date, err := time.Parse(converter.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	consultation := &entity.Consultation{
		Date:        date,
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		Description: req.Description,
	}

	if err := u.consultationRepo.Create(ctx, consultation); err != nil {
		if isForeignKeyError(err, "medico") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "paciente") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetAllConsultations(ctx context.Context) (*dto.ConsultationListResponse, error) {
	consultations, err := u.consultationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}

	responses := converter.ConsultationsToResponses(consultations)

	return &dto.ConsultationListResponse{
		Consultations: responses,
		Total:         len(responses),
	}, nil
}

func (u *consultationUsecase) UpdateConsultation(ctx context.Context, id uint, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	// Only provided fields overwrite.
	if req.Date != "" {
		date, err := time.Parse(converter.DateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		consultation.Date = date
	}
	if req.DoctorID != 0 {
		consultation.DoctorID = req.DoctorID
	}
	if req.PatientID != 0 {
		consultation.PatientID = req.PatientID
	}
	if req.Description != "" {
		consultation.Description = req.Description
	}

	if err := u.consultationRepo.Update(ctx, consultation); err != nil {
		if isForeignKeyError(err, "medico") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "paciente") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) DeleteConsultation(ctx context.Context, id uint) error {
	affected, err := u.consultationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete consultation: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrConsultationNotFound
	}

	return nil
}
