package dto

// Request DTOs

type CreateCertificateRequest struct {
	Date            string `json:"data" validate:"required,datetime=2006-01-02"`
	DoctorID        uint   `json:"medico_id" validate:"required"`
	PatientID       uint   `json:"paciente_id" validate:"required"`
	DiagnosisCodeID uint   `json:"cids_id" validate:"required"`
	Description     string `json:"descricao" validate:"required"`
}

type UpdateCertificateRequest struct {
	Date            string `json:"data" validate:"omitempty,datetime=2006-01-02"`
	DoctorID        uint   `json:"medico_id" validate:"omitempty"`
	PatientID       uint   `json:"paciente_id" validate:"omitempty"`
	DiagnosisCodeID uint   `json:"cids_id" validate:"omitempty"`
	Description     string `json:"descricao" validate:"omitempty"`
}

// Empty reports whether no field was provided for a partial update.
func (r *UpdateCertificateRequest) Empty() bool {
	return r.Date == "" && r.DoctorID == 0 && r.PatientID == 0 &&
		r.DiagnosisCodeID == 0 && r.Description == ""
}

// Response DTOs

// CertificateResponse carries the denormalized doctor, patient and diagnosis
// names for listings.
type CertificateResponse struct {
	ID                uint   `json:"id"`
	Date              string `json:"data"`
	DoctorID          uint   `json:"medico_id"`
	PatientID         uint   `json:"paciente_id"`
	DiagnosisCodeID   uint   `json:"cids_id"`
	Description       string `json:"descricao"`
	DoctorName        string `json:"medico_nome,omitempty"`
	PatientName       string `json:"paciente_nome,omitempty"`
	DiagnosisCodeName string `json:"cid_nome,omitempty"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
}
