package converter

import (
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
)

func DiagnosisCodeToResponse(code *entity.DiagnosisCode) *dto.DiagnosisCodeResponse {
	if code == nil {
		return nil
	}

	return &dto.DiagnosisCodeResponse{
		ID:          code.ID,
		Name:        code.Name,
		Code:        code.Code,
		Description: code.Description,
	}
}

func DiagnosisCodesToResponses(codes []entity.DiagnosisCode) []dto.DiagnosisCodeResponse {
	responses := make([]dto.DiagnosisCodeResponse, len(codes))
	for i, code := range codes {
		responses[i] = *DiagnosisCodeToResponse(&code)
	}
	return responses
}
