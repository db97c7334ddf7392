package dto

// Request DTOs

type CreateHospitalRequest struct {
	Name    string `json:"nome" validate:"required"`
	Address string `json:"endereco" validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	CNPJ    string `json:"cnpj" validate:"required"`
	Senha   string `json:"senha" validate:"required,min=6"`
}

type UpdateHospitalRequest struct {
	Name    string `json:"nome" validate:"omitempty"`
	Address string `json:"endereco" validate:"omitempty"`
	Phone   string `json:"telefone" validate:"omitempty"`
	Email   string `json:"email" validate:"omitempty,email"`
	CNPJ    string `json:"cnpj" validate:"omitempty"`
	Senha   string `json:"senha" validate:"omitempty,min=6"`
}

// Empty reports whether no field was provided for a partial update.
func (r *UpdateHospitalRequest) Empty() bool {
	return r.Name == "" && r.Address == "" && r.Phone == "" &&
		r.Email == "" && r.CNPJ == "" && r.Senha == ""
}

// Response DTOs

type HospitalResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	CNPJ    string `json:"cnpj"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
