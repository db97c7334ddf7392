package converter

import (
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
)

// DateLayout is the wire format for consulta and atestado dates.
const DateLayout = "2006-01-02"

// ConsultationToResponse flattens the preloaded doctor/patient associations
// into the denormalized name fields listings expect.
func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	return &dto.ConsultationResponse{
		ID:          consultation.ID,
		Date:        consultation.Date.Format(DateLayout),
		DoctorID:    consultation.DoctorID,
		PatientID:   consultation.PatientID,
		Description: consultation.Description,
		DoctorName:  consultation.Doctor.Name,
		PatientName: consultation.Patient.Name,
	}
}

func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		responses[i] = *ConsultationToResponse(&consultation)
	}
	return responses
}
