package converter

import (
	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/domain/entity"
)

// CertificateToResponse flattens the preloaded doctor/patient/diagnosis-code
// associations into the denormalized name fields listings expect.
func CertificateToResponse(certificate *entity.Certificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	return &dto.CertificateResponse{
		ID:                certificate.ID,
		Date:              certificate.Date.Format(DateLayout),
		DoctorID:          certificate.DoctorID,
		PatientID:         certificate.PatientID,
		DiagnosisCodeID:   certificate.DiagnosisCodeID,
		Description:       certificate.Description,
		DoctorName:        certificate.Doctor.Name,
		PatientName:       certificate.Patient.Name,
		DiagnosisCodeName: certificate.DiagnosisCode.Name,
	}
}

func CertificatesToResponses(certificates []entity.Certificate) []dto.CertificateResponse {
	responses := make([]dto.CertificateResponse, len(certificates))
	for i, certificate := range certificates {
		responses[i] = *CertificateToResponse(&certificate)
	}
	return responses
}
