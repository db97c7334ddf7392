package http

import (
	"net/http"
	"time"

	"medconnect-api/internal/delivery/http/handler"
	"medconnect-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	hospitalHandler      *handler.HospitalHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	consultationHandler  *handler.ConsultationHandler
	certificateHandler   *handler.CertificateHandler
	diagnosisCodeHandler *handler.DiagnosisCodeHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	requestTimeout       time.Duration
}

func NewRouter(
	authHandler *handler.AuthHandler,
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	consultationHandler *handler.ConsultationHandler,
	certificateHandler *handler.CertificateHandler,
	diagnosisCodeHandler *handler.DiagnosisCodeHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestTimeout time.Duration,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		hospitalHandler:      hospitalHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		consultationHandler:  consultationHandler,
		certificateHandler:   certificateHandler,
		diagnosisCodeHandler: diagnosisCodeHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		requestTimeout:       requestTimeout,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/", r.healthCheck).Methods(http.MethodGet)

	// Users and auth
	r.router.HandleFunc("/user", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/users", r.authHandler.ListUsers).Methods(http.MethodGet)
	r.router.HandleFunc("/auth/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	r.router.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	r.router.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Hospitals
	r.router.HandleFunc("/hospital", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)
	r.router.HandleFunc("/hospital", r.hospitalHandler.GetAllHospitals).Methods(http.MethodGet)
	r.router.HandleFunc("/hospital/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	r.router.HandleFunc("/hospital/{id}", r.hospitalHandler.UpdateHospital).Methods(http.MethodPut)
	r.router.HandleFunc("/hospital/{id}", r.hospitalHandler.DeleteHospital).Methods(http.MethodDelete)

	// Doctors
	r.router.HandleFunc("/doctor", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	r.router.HandleFunc("/doctor", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	r.router.HandleFunc("/doctor/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	r.router.HandleFunc("/doctor/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	r.router.HandleFunc("/doctor/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patients
	r.router.HandleFunc("/paciente", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	r.router.HandleFunc("/paciente", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	r.router.HandleFunc("/paciente/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	r.router.HandleFunc("/paciente/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	r.router.HandleFunc("/paciente/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Consultations
	r.router.HandleFunc("/consulta", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	r.router.HandleFunc("/consulta", r.consultationHandler.GetAllConsultations).Methods(http.MethodGet)
	r.router.HandleFunc("/consulta/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	r.router.HandleFunc("/consulta/{id}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut)
	r.router.HandleFunc("/consulta/{id}", r.consultationHandler.DeleteConsultation).Methods(http.MethodDelete)

	// Certificates
	r.router.HandleFunc("/atestado", r.certificateHandler.CreateCertificate).Methods(http.MethodPost)
	r.router.HandleFunc("/atestado", r.certificateHandler.GetAllCertificates).Methods(http.MethodGet)
	r.router.HandleFunc("/atestado/{id}", r.certificateHandler.GetCertificate).Methods(http.MethodGet)
	r.router.HandleFunc("/atestado/{id}", r.certificateHandler.UpdateCertificate).Methods(http.MethodPut)
	r.router.HandleFunc("/atestado/{id}", r.certificateHandler.DeleteCertificate).Methods(http.MethodDelete)

	// Diagnosis codes
	r.router.HandleFunc("/cids", r.diagnosisCodeHandler.CreateDiagnosisCode).Methods(http.MethodPost)
	r.router.HandleFunc("/cids", r.diagnosisCodeHandler.GetAllDiagnosisCodes).Methods(http.MethodGet)
	r.router.HandleFunc("/cids/{id}", r.diagnosisCodeHandler.GetDiagnosisCode).Methods(http.MethodGet)
	r.router.HandleFunc("/cids/{id}", r.diagnosisCodeHandler.UpdateDiagnosisCode).Methods(http.MethodPut)
	r.router.HandleFunc("/cids/{id}", r.diagnosisCodeHandler.DeleteDiagnosisCode).Methods(http.MethodDelete)

	policy := middleware.NewRoutePolicy(
		middleware.Protect(http.MethodGet, "/users"),
		middleware.Protect(http.MethodPost, "/auth/logout"),
		middleware.Protect(http.MethodGet, "/auth/me"),
	)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.Timeout(r.requestTimeout))
	r.router.Use(r.authMiddleware.Guard(policy))

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
