package dto

// Request DTOs

type CreatePatientRequest struct {
	Name    string `json:"nome" validate:"required"`
	Address string `json:"endereco" validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	CPF     string `json:"cpf" validate:"required"`
}

type UpdatePatientRequest struct {
	Name    string `json:"nome" validate:"omitempty"`
	Address string `json:"endereco" validate:"omitempty"`
	Phone   string `json:"telefone" validate:"omitempty"`
	Email   string `json:"email" validate:"omitempty,email"`
	CPF     string `json:"cpf" validate:"omitempty"`
}

// Empty reports whether no field was provided for a partial update.
func (r *UpdatePatientRequest) Empty() bool {
	return r.Name == "" && r.Address == "" && r.Phone == "" &&
		r.Email == "" && r.CPF == ""
}

// Response DTOs

type PatientResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	CPF     string `json:"cpf"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
