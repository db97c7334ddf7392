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

func TestCreateDiagnosisCode(t *testing.T) {
	repo := &mockDiagnosisCodeRepository{
		CreateFunc: func(ctx context.Context, code *entity.DiagnosisCode) error {
			code.ID = 1
			return nil
		},
	}
	uc := NewDiagnosisCodeUsecase(testLogger(), repo)

	resp, err := uc.CreateDiagnosisCode(context.Background(), &dto.CreateDiagnosisCodeRequest{
		Name:        "Gripe",
		Code:        "J11",
		Description: "Influenza",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "J11", resp.Code)
}

func TestGetDiagnosisCode_NotFound(t *testing.T) {
	uc := NewDiagnosisCodeUsecase(testLogger(), &mockDiagnosisCodeRepository{})

	_, err := uc.GetDiagnosisCode(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDiagnosisCodeNotFound)
}

func TestUpdateDiagnosisCode_PartialFields(t *testing.T) {
	existing := &entity.DiagnosisCode{ID: 1, Name: "Gripe", Code: "J11", Description: "Influenza"}
	var updated *entity.DiagnosisCode
	repo := &mockDiagnosisCodeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.DiagnosisCode, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, code *entity.DiagnosisCode) error {
			updated = code
			return nil
		},
	}
	uc := NewDiagnosisCodeUsecase(testLogger(), repo)

	resp, err := uc.UpdateDiagnosisCode(context.Background(), 1, &dto.UpdateDiagnosisCodeRequest{
		Name: "Influenza sazonal",
	})

	require.NoError(t, err)
	assert.Equal(t, "Influenza sazonal", resp.Name)
	require.NotNil(t, updated)
	assert.Equal(t, "J11", updated.Code)
}

func TestDeleteDiagnosisCode_InUse(t *testing.T) {
	repo := &mockDiagnosisCodeRepository{
		DeleteFunc: func(ctx context.Context, id uint) (int64, error) {
			return 0, &pgconn.PgError{Code: "23503", ConstraintName: "fk_atestado_cids"}
		},
	}
	uc := NewDiagnosisCodeUsecase(testLogger(), repo)

	assert.ErrorIs(t, uc.DeleteDiagnosisCode(context.Background(), 1), ErrDiagnosisCodeInUse)
}

func TestDeleteDiagnosisCode_NotFound(t *testing.T) {
	repo := &mockDiagnosisCodeRepository{
		DeleteFunc: func(ctx context.Context, id uint) (int64, error) {
			return 0, nil
		},
	}
	uc := NewDiagnosisCodeUsecase(testLogger(), repo)

	assert.ErrorIs(t, uc.DeleteDiagnosisCode(context.Background(), 42), ErrDiagnosisCodeNotFound)
}
