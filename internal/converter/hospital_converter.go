package converter

import (
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to its response DTO. The
// senha hash never leaves the entity.
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:      hospital.ID,
		Name:    hospital.Name,
		Address: hospital.Address,
		Phone:   hospital.Phone,
		Email:   hospital.Email,
		CNPJ:    hospital.CNPJ,
	}
}

func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		responses[i] = *HospitalToResponse(&hospital)
	}
	return responses
}
