package dto

// Request DTOs

type CreateConsultationRequest struct {
	Date        string `json:"data" validate:"required,datetime=2006-01-02"`
	DoctorID    uint   `json:"medico_id" validate:"required"`
	PatientID   uint   `json:"paciente_id" validate:"required"`
	Description string `json:"descricao" validate:"required"`
}

type UpdateConsultationRequest struct {
	Date        string `json:"data" validate:"omitempty,datetime=2006-01-02"`
	DoctorID    uint   `json:"medico_id" validate:"omitempty"`
	PatientID   uint   `json:"paciente_id" validate:"omitempty"`
	Description string `json:"descricao" validate:"omitempty"`
}

// Empty reports whether no field was provided for a partial update.
func (r *UpdateConsultationRequest) Empty() bool {
	return r.Date == "" && r.DoctorID == 0 && r.PatientID == 0 && r.Description == ""
}

// Response DTOs

// ConsultationResponse carries the denormalized doctor and patient names for
// listings.
type ConsultationResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"data"`
	DoctorID    uint   `json:"medico_id"`
	PatientID   uint   `json:"paciente_id"`
	Description string `json:"descricao"`
	DoctorName  string `json:"medico_nome,omitempty"`
	PatientName string `json:"paciente_nome,omitempty"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
