package usecase

import (
	"context"
	"testing"

	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctor(t *testing.T) {
	repo := &mockDoctorRepository{
		CreateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			doctor.ID = 1
			return nil
		},
	}
	uc := NewDoctorUsecase(testLogger(), repo)

	hospitalID := uint(2)
	resp, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:       "Dr. Silva",
		CRM:        "CRM-12345",
		Specialty:  "Cardiologia",
		HospitalID: &hospitalID,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "CRM-12345", resp.CRM)
	require.NotNil(t, resp.HospitalID)
	assert.Equal(t, uint(2), *resp.HospitalID)
}

func TestCreateDoctor_DuplicateCRM(t *testing.T) {
	repo := &mockDoctorRepository{
		CreateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_medico_crm"}
		},
	}
	uc := NewDoctorUsecase(testLogger(), repo)

	_, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:      "Dr. Silva",
		CRM:       "CRM-12345",
		Specialty: "Cardiologia",
	})
	assert.ErrorIs(t, err, ErrDoctorCRMExists)
}

func TestCreateDoctor_UnknownHospital(t *testing.T) {
	repo := &mockDoctorRepository{
		CreateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_medico_hospital"}
		},
	}
	uc := NewDoctorUsecase(testLogger(), repo)

	hospitalID := uint(999)
	_, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:       "Dr. Silva",
		CRM:        "CRM-12345",
		Specialty:  "Cardiologia",
		HospitalID: &hospitalID,
	})
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestUpdateDoctor_PartialFields(t *testing.T) {
	existing := &entity.Doctor{ID: 1, Name: "Dr. Silva", CRM: "CRM-12345", Specialty: "Cardiologia"}
	var updated *entity.Doctor
	repo := &mockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Doctor, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			updated = doctor
			return nil
		},
	}
	uc := NewDoctorUsecase(testLogger(), repo)

	resp, err := uc.UpdateDoctor(context.Background(), 1, &dto.UpdateDoctorRequest{
		Specialty: "Neurologia",
	})

	require.NoError(t, err)
	assert.Equal(t, "Neurologia", resp.Specialty)
	require.NotNil(t, updated)
	assert.Equal(t, "CRM-12345", updated.CRM)
}

func TestUpdateDoctor_NotFound(t *testing.T) {
	uc := NewDoctorUsecase(testLogger(), &mockDoctorRepository{})

	_, err := uc.UpdateDoctor(context.Background(), 42, &dto.UpdateDoctorRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDeleteDoctor(t *testing.T) {
	var deletedID uint
	repo := &mockDoctorRepository{
		DeleteFunc: func(ctx context.Context, id uint) (int64, error) {
			deletedID = id
			return 1, nil
		},
	}
	uc := NewDoctorUsecase(testLogger(), repo)

	require.NoError(t, uc.DeleteDoctor(context.Background(), 5))
	assert.Equal(t, uint(5), deletedID)
}

func TestDeleteDoctor_NotFound(t *testing.T) {
	repo := &mockDoctorRepository{
		DeleteFunc: func(ctx context.Context, id uint) (int64, error) {
			return 0, nil
		},
	}
	uc := NewDoctorUsecase(testLogger(), repo)

	assert.ErrorIs(t, uc.DeleteDoctor(context.Background(), 42), ErrDoctorNotFound)
}
