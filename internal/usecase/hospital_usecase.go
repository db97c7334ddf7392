package usecase

import (
	"context"
	"errors"

	"medconnect-api/internal/converter"
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
	"medconnect-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrHospitalEmailExists = errors.New("hospital email already exists")
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetHospital(ctx context.Context, id uint) (*dto.HospitalResponse, error)
	GetAllHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	UpdateHospital(ctx context.Context, id uint, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, id uint) error
}

type hospitalUsecase struct {
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	bcryptCost   int
}

func NewHospitalUsecase(log *logrus.Logger, hospitalRepo repository.HospitalRepository, bcryptCost int) HospitalUsecase {
	return &hospitalUsecase{
		log:          log,
		hospitalRepo: hospitalRepo,
		bcryptCost:   bcryptCost,
	}
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	exists, err := u.hospitalRepo.EmailExists(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check hospital email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrHospitalEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Senha), u.bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	hospital := &entity.Hospital{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		CNPJ:    req.CNPJ,
		Senha:   string(hashedPassword),
	}

	if err := u.hospitalRepo.Create(ctx, hospital); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrHospitalEmailExists
		}
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, id uint) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetAllHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)

	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}, nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, id uint, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	// Only provided fields overwrite.
	if req.Name != "" {
		hospital.Name = req.Name
	}
	if req.Address != "" {
		hospital.Address = req.Address
	}
	if req.Phone != "" {
		hospital.Phone = req.Phone
	}
	if req.Email != "" {
		hospital.Email = req.Email
	}
	if req.CNPJ != "" {
		hospital.CNPJ = req.CNPJ
	}
	if req.Senha != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Senha), u.bcryptCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		hospital.Senha = string(hashedPassword)
	}

	if err := u.hospitalRepo.Update(ctx, hospital); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrHospitalEmailExists
		}
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) DeleteHospital(ctx context.Context, id uint) error {
	affected, err := u.hospitalRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrHospitalNotFound
	}

	return nil
}
