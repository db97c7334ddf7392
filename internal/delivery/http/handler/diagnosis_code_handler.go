package handler

import (
	"encoding/json"
	"net/http"

	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/usecase"
	"medconnect-api/pkg/response"
	"medconnect-api/pkg/validator"
)

type DiagnosisCodeHandler struct {
	codeUsecase usecase.DiagnosisCodeUsecase
	validator   *validator.CustomValidator
}

func NewDiagnosisCodeHandler(codeUsecase usecase.DiagnosisCodeUsecase, validator *validator.CustomValidator) *DiagnosisCodeHandler {
	return &DiagnosisCodeHandler{
		codeUsecase: codeUsecase,
		validator:   validator,
	}
}

func (h *DiagnosisCodeHandler) CreateDiagnosisCode(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiagnosisCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	code, err := h.codeUsecase.CreateDiagnosisCode(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create diagnosis code")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis code registered successfully", code)
}

func (h *DiagnosisCodeHandler) GetDiagnosisCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis code ID", nil)
		return
	}

	code, err := h.codeUsecase.GetDiagnosisCode(r.Context(), id)
	if err != nil {
		if err == usecase.ErrDiagnosisCodeNotFound {
			response.NotFound(w, "Diagnosis code not found")
			return
		}
		response.InternalServerError(w, "Failed to get diagnosis code")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis code retrieved successfully", code)
}

func (h *DiagnosisCodeHandler) GetAllDiagnosisCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.codeUsecase.GetAllDiagnosisCodes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list diagnosis codes")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis codes retrieved successfully", codes)
}

func (h *DiagnosisCodeHandler) UpdateDiagnosisCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis code ID", nil)
		return
	}

	var req dto.UpdateDiagnosisCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.Empty() {
		response.Error(w, http.StatusBadRequest, "At least one field must be provided", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	code, err := h.codeUsecase.UpdateDiagnosisCode(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrDiagnosisCodeNotFound {
			response.NotFound(w, "Diagnosis code not found")
			return
		}
		response.InternalServerError(w, "Failed to update diagnosis code")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis code updated successfully", code)
}

func (h *DiagnosisCodeHandler) DeleteDiagnosisCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis code ID", nil)
		return
	}

	if err := h.codeUsecase.DeleteDiagnosisCode(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDiagnosisCodeNotFound:
			response.NotFound(w, "Diagnosis code not found")
		case usecase.ErrDiagnosisCodeInUse:
			response.Conflict(w, "Diagnosis code is referenced by certificates")
		default:
			response.InternalServerError(w, "Failed to delete diagnosis code")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis code deleted successfully", nil)
}
