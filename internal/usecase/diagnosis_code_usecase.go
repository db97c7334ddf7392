package usecase

import (
	"context"
	"errors"

	"medconnect-api/internal/converter"
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
	"medconnect-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDiagnosisCodeNotFound = errors.New("diagnosis code not found")
	ErrDiagnosisCodeInUse    = errors.New("diagnosis code is referenced by certificates")
)

type DiagnosisCodeUsecase interface {
	CreateDiagnosisCode(ctx context.Context, req *dto.CreateDiagnosisCodeRequest) (*dto.DiagnosisCodeResponse, error)
	GetDiagnosisCode(ctx context.Context, id uint) (*dto.DiagnosisCodeResponse, error)
	GetAllDiagnosisCodes(ctx context.Context) (*dto.DiagnosisCodeListResponse, error)
	UpdateDiagnosisCode(ctx context.Context, id uint, req *dto.UpdateDiagnosisCodeRequest) (*dto.DiagnosisCodeResponse, error)
	DeleteDiagnosisCode(ctx context.Context, id uint) error
}

type diagnosisCodeUsecase struct {
	log      *logrus.Logger
	codeRepo repository.DiagnosisCodeRepository
}

func NewDiagnosisCodeUsecase(log *logrus.Logger, codeRepo repository.DiagnosisCodeRepository) DiagnosisCodeUsecase {
	return &diagnosisCodeUsecase{
		log:      log,
		codeRepo: codeRepo,
	}
}

func (u *diagnosisCodeUsecase) CreateDiagnosisCode(ctx context.Context, req *dto.CreateDiagnosisCodeRequest) (*dto.DiagnosisCodeResponse, error) {
	code := &entity.DiagnosisCode{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}

	if err := u.codeRepo.Create(ctx, code); err != nil {
		u.log.Warnf("Failed to create diagnosis code: %+v", err)
		return nil, err
	}

	return converter.DiagnosisCodeToResponse(code), nil
}

func (u *diagnosisCodeUsecase) GetDiagnosisCode(ctx context.Context, id uint) (*dto.DiagnosisCodeResponse, error) {
	code, err := u.codeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis code: %+v", err)
		return nil, err
	}
	if code == nil {
		return nil, ErrDiagnosisCodeNotFound
	}

	return converter.DiagnosisCodeToResponse(code), nil
}

func (u *diagnosisCodeUsecase) GetAllDiagnosisCodes(ctx context.Context) (*dto.DiagnosisCodeListResponse, error) {
	codes, err := u.codeRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list diagnosis codes: %+v", err)
		return nil, err
	}

	responses := converter.DiagnosisCodesToResponses(codes)

	return &dto.DiagnosisCodeListResponse{
		Codes: responses,
		Total: len(responses),
	}, nil
}

func (u *diagnosisCodeUsecase) UpdateDiagnosisCode(ctx context.Context, id uint, req *dto.UpdateDiagnosisCodeRequest) (*dto.DiagnosisCodeResponse, error) {
	code, err := u.codeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis code: %+v", err)
		return nil, err
	}
	if code == nil {
		return nil, ErrDiagnosisCodeNotFound
	}

	// Only provided fields overwrite.
	if req.Name != "" {
		code.Name = req.Name
	}
	if req.Code != "" {
		code.Code = req.Code
	}
	if req.Description != "" {
		code.Description = req.Description
	}

	if err := u.codeRepo.Update(ctx, code); err != nil {
		u.log.Warnf("Failed to update diagnosis code: %+v", err)
		return nil, err
	}

	return converter.DiagnosisCodeToResponse(code), nil
}

func (u *diagnosisCodeUsecase) DeleteDiagnosisCode(ctx context.Context, id uint) error {
	affected, err := u.codeRepo.Delete(ctx, id)
	if err != nil {
		// Certificates reference cids without a cascade; the FK blocks the
		// delete instead of orphaning them.
		if isForeignKeyError(err, "cids") {
			return ErrDiagnosisCodeInUse
		}
		u.log.Warnf("Failed to delete diagnosis code: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDiagnosisCodeNotFound
	}

	return nil
}
