package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"medconnect-api/internal/domain/entity"
	"medconnect-api/internal/domain/repository"
	"medconnect-api/internal/service"
	"medconnect-api/pkg/jwt"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- mockUserRepository ---

var _ repository.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindAllFunc     func(ctx context.Context) ([]entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

// --- mockHospitalRepository ---

var _ repository.HospitalRepository = (*mockHospitalRepository)(nil)

type mockHospitalRepository struct {
	CreateFunc      func(ctx context.Context, hospital *entity.Hospital) error
	FindAllFunc     func(ctx context.Context) ([]entity.Hospital, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.Hospital, error)
	UpdateFunc      func(ctx context.Context, hospital *entity.Hospital) error
	DeleteFunc      func(ctx context.Context, id uint) (int64, error)
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockHospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, hospital)
	}
	return nil
}

func (m *mockHospitalRepository) FindAll(ctx context.Context) ([]entity.Hospital, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockHospitalRepository) FindByID(ctx context.Context, id uint) (*entity.Hospital, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHospitalRepository) Update(ctx context.Context, hospital *entity.Hospital) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, hospital)
	}
	return nil
}

func (m *mockHospitalRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

func (m *mockHospitalRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

// --- mockDoctorRepository ---

var _ repository.DoctorRepository = (*mockDoctorRepository)(nil)

type mockDoctorRepository struct {
	CreateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	FindAllFunc  func(ctx context.Context) ([]entity.Doctor, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Doctor, error)
	UpdateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	DeleteFunc   func(ctx context.Context, id uint) (int64, error)
}

func (m *mockDoctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *mockDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDoctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return nil
}

func (m *mockDoctorRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- mockPatientRepository ---

var _ repository.PatientRepository = (*mockPatientRepository)(nil)

type mockPatientRepository struct {
	CreateFunc      func(ctx context.Context, patient *entity.Patient) error
	FindAllFunc     func(ctx context.Context) ([]entity.Patient, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.Patient, error)
	UpdateFunc      func(ctx context.Context, patient *entity.Patient) error
	DeleteFunc      func(ctx context.Context, id uint) (int64, error)
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

func (m *mockPatientRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

// --- mockConsultationRepository ---

var _ repository.ConsultationRepository = (*mockConsultationRepository)(nil)

type mockConsultationRepository struct {
	CreateFunc          func(ctx context.Context, consultation *entity.Consultation) error
	FindAllFunc         func(ctx context.Context) ([]entity.Consultation, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*entity.Consultation, error)
	UpdateFunc          func(ctx context.Context, consultation *entity.Consultation) error
	DeleteFunc          func(ctx context.Context, id uint) (int64, error)
	FindByDoctorIDFunc  func(ctx context.Context, doctorID uint) ([]entity.Consultation, error)
	FindByPatientIDFunc func(ctx context.Context, patientID uint) ([]entity.Consultation, error)
}

func (m *mockConsultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, consultation)
	}
	return nil
}

func (m *mockConsultationRepository) FindAll(ctx context.Context) ([]entity.Consultation, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockConsultationRepository) FindByID(ctx context.Context, id uint) (*entity.Consultation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConsultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, consultation)
	}
	return nil
}

func (m *mockConsultationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

func (m *mockConsultationRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Consultation, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockConsultationRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Consultation, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

// --- mockCertificateRepository ---

var _ repository.CertificateRepository = (*mockCertificateRepository)(nil)

type mockCertificateRepository struct {
	CreateFunc          func(ctx context.Context, certificate *entity.Certificate) error
	FindAllFunc         func(ctx context.Context) ([]entity.Certificate, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*entity.Certificate, error)
	UpdateFunc          func(ctx context.Context, certificate *entity.Certificate) error
	DeleteFunc          func(ctx context.Context, id uint) (int64, error)
	FindByDoctorIDFunc  func(ctx context.Context, doctorID uint) ([]entity.Certificate, error)
	FindByPatientIDFunc func(ctx context.Context, patientID uint) ([]entity.Certificate, error)
}

func (m *mockCertificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, certificate)
	}
	return nil
}

func (m *mockCertificateRepository) FindAll(ctx context.Context) ([]entity.Certificate, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCertificateRepository) FindByID(ctx context.Context, id uint) (*entity.Certificate, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCertificateRepository) Update(ctx context.Context, certificate *entity.Certificate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, certificate)
	}
	return nil
}

func (m *mockCertificateRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

func (m *mockCertificateRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Certificate, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockCertificateRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Certificate, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

// --- mockDiagnosisCodeRepository ---

var _ repository.DiagnosisCodeRepository = (*mockDiagnosisCodeRepository)(nil)

type mockDiagnosisCodeRepository struct {
	CreateFunc   func(ctx context.Context, code *entity.DiagnosisCode) error
	FindAllFunc  func(ctx context.Context) ([]entity.DiagnosisCode, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.DiagnosisCode, error)
	UpdateFunc   func(ctx context.Context, code *entity.DiagnosisCode) error
	DeleteFunc   func(ctx context.Context, id uint) (int64, error)
}

func (m *mockDiagnosisCodeRepository) Create(ctx context.Context, code *entity.DiagnosisCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, code)
	}
	return nil
}

func (m *mockDiagnosisCodeRepository) FindAll(ctx context.Context) ([]entity.DiagnosisCode, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockDiagnosisCodeRepository) FindByID(ctx context.Context, id uint) (*entity.DiagnosisCode, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDiagnosisCodeRepository) Update(ctx context.Context, code *entity.DiagnosisCode) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, code)
	}
	return nil
}

func (m *mockDiagnosisCodeRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- memoryTokenStore ---

var _ service.TokenStore = (*memoryTokenStore)(nil)

// memoryTokenStore is a map-backed TokenStore for tests. TTLs are ignored.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]bool)}
}

func memoryTokenKey(tokenType jwt.TokenType, userID uint, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", tokenType, userID, tokenID)
}

func (s *memoryTokenStore) Save(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[memoryTokenKey(tokenType, userID, tokenID)] = true
	return nil
}

func (s *memoryTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[memoryTokenKey(tokenType, userID, tokenID)], nil
}

func (s *memoryTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, memoryTokenKey(tokenType, userID, tokenID))
	return nil
}
