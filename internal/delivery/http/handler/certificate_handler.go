package handler

import (
	"encoding/json"
	"net/http"

	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/usecase"
	"medconnect-api/pkg/response"
	"medconnect-api/pkg/validator"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
	validator          *validator.CustomValidator
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase, validator *validator.CustomValidator) *CertificateHandler {
	return &CertificateHandler{
		certificateUsecase: certificateUsecase,
		validator:          validator,
	}
}

func (h *CertificateHandler) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	certificate, err := h.certificateUsecase.CreateCertificate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDiagnosisCodeNotFound:
			response.NotFound(w, "Diagnosis code not found")
		default:
			response.InternalServerError(w, "Failed to create certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate registered successfully", certificate)
}

func (h *CertificateHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	certificate, err := h.certificateUsecase.GetCertificate(r.Context(), id)
	if err != nil {
		if err == usecase.ErrCertificateNotFound {
			response.NotFound(w, "Certificate not found")
			return
		}
		response.InternalServerError(w, "Failed to get certificate")
		return
	}

	response.Success(w, http.StatusOK, "Certificate retrieved successfully", certificate)
}

func (h *CertificateHandler) GetAllCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateUsecase.GetAllCertificates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list certificates")
		return
	}

	response.Success(w, http.StatusOK, "Certificates retrieved successfully", certificates)
}

func (h *CertificateHandler) UpdateCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	var req dto.UpdateCertificateRequest
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

	certificate, err := h.certificateUsecase.UpdateCertificate(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDiagnosisCodeNotFound:
			response.NotFound(w, "Diagnosis code not found")
		default:
			response.InternalServerError(w, "Failed to update certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate updated successfully", certificate)
}

func (h *CertificateHandler) DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	if err := h.certificateUsecase.DeleteCertificate(r.Context(), id); err != nil {
		if err == usecase.ErrCertificateNotFound {
			response.NotFound(w, "Certificate not found")
			return
		}
		response.InternalServerError(w, "Failed to delete certificate")
		return
	}

	response.Success(w, http.StatusOK, "Certificate deleted successfully", nil)
}
