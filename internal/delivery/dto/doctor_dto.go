package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name       string `json:"nome" validate:"required"`
	CRM        string `json:"crm" validate:"required"`
	Specialty  string `json:"especialidade" validate:"required"`
	HospitalID *uint  `json:"hospital_id" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Name       string `json:"nome" validate:"omitempty"`
	CRM        string `json:"crm" validate:"omitempty"`
	Specialty  string `json:"especialidade" validate:"omitempty"`
	HospitalID *uint  `json:"hospital_id" validate:"omitempty"`
}

// Empty reports whether no field was provided for a partial update.
func (r *UpdateDoctorRequest) Empty() bool {
	return r.Name == "" && r.CRM == "" && r.Specialty == "" && r.HospitalID == nil
}

// Response DTOs

type DoctorResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"nome"`
	CRM        string `json:"crm"`
	Specialty  string `json:"especialidade"`
	HospitalID *uint  `json:"hospital_id,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
