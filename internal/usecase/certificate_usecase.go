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

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateUsecase interface {
	CreateCertificate(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error)
	GetCertificate(ctx context.Context, id uint) (*dto.CertificateResponse, error)
	GetAllCertificates(ctx context.Context) (*dto.CertificateListResponse, error)
	UpdateCertificate(ctx context.Context, id uint, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error)
	DeleteCertificate(ctx context.Context, id uint) error
}

type certificateUsecase struct {
	log             *logrus.Logger
	certificateRepo repository.CertificateRepository
}

func NewCertificateUsecase(log *logrus.Logger, certificateRepo repository.CertificateRepository) CertificateUsecase {
	return &certificateUsecase{
		log:             log,
		certificateRepo: certificateRepo,
	}
}

func (u *certificateUsecase) CreateCertificate(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error) {
	date, err := time.Parse(converter.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	certificate := &entity.Certificate{
		Date:            date,
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		DiagnosisCodeID: req.DiagnosisCodeID,
		Description:     req.Description,
	}

	if err := u.certificateRepo.Create(ctx, certificate); err != nil {
		if isForeignKeyError(err, "medico") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "paciente") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "cids") {
			return nil, ErrDiagnosisCodeNotFound
		}
		u.log.Warnf("Failed to create certificate: %+v", err)
		return nil, err
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetCertificate(ctx context.Context, id uint) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetAllCertificates(ctx context.Context) (*dto.CertificateListResponse, error) {
	certificates, err := u.certificateRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list certificates: %+v", err)
		return nil, err
	}

	responses := converter.CertificatesToResponses(certificates)

	return &dto.CertificateListResponse{
		Certificates: responses,
		Total:        len(responses),
	}, nil
}

func (u *certificateUsecase) UpdateCertificate(ctx context.Context, id uint, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	// Only provided fields overwrite.
	if req.Date != "" {
		date, err := time.Parse(converter.DateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		certificate.Date = date
	}
	if req.DoctorID != 0 {
		certificate.DoctorID = req.DoctorID
	}
	if req.PatientID != 0 {
		certificate.PatientID = req.PatientID
	}
	if req.DiagnosisCodeID != 0 {
		certificate.DiagnosisCodeID = req.DiagnosisCodeID
	}
	if req.Description != "" {
		certificate.Description = req.Description
	}

	if err := u.certificateRepo.Update(ctx, certificate); err != nil {
		if isForeignKeyError(err, "medico") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "paciente") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "cids") {
			return nil, ErrDiagnosisCodeNotFound
		}
		u.log.Warnf("Failed to update certificate: %+v", err)
		return nil, err
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) DeleteCertificate(ctx context.Context, id uint) error {
	affected, err := u.certificateRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete certificate: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrCertificateNotFound
	}

	return nil
}
