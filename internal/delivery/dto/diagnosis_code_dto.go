package dto

// Request DTOs

type CreateDiagnosisCodeRequest struct {
	Name        string `json:"nome" validate:"required"`
	Code        string `json:"cod" validate:"required"`
	Description string `json:"descricao" validate:"omitempty"`
}

type UpdateDiagnosisCodeRequest struct {
	Name        string `json:"nome" validate:"omitempty"`
	Code        string `json:"cod" validate:"omitempty"`
	Description string `json:"descricao" validate:"omitempty"`
}

// Empty reports whether no field was provided for a partial update.
func (r *UpdateDiagnosisCodeRequest) Empty() bool {
	return r.Name == "" && r.Code == "" && r.Description == ""
}

// Response DTOs

type DiagnosisCodeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"nome"`
	Code        string `json:"cod"`
	Description string `json:"descricao,omitempty"`
}

type DiagnosisCodeListResponse struct {
	Codes []DiagnosisCodeResponse `json:"codes"`
	Total int                     `json:"total"`
}
