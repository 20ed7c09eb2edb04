package fakes

import (
	"context"
	"strings"
	"sync"

	"healthcare-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientRepository keeps patients in memory and mirrors the filter semantics of the mongo queries.
// Err, when set, is returned by every call.
type PatientRepository struct {
	mu       sync.Mutex
	patients []models.Patient
	Err      error
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{patients: make([]models.Patient, 0)}
}

func (r *PatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	stored := *patient
	stored.ID = primitive.NewObjectID().Hex()
	r.patients = append(r.patients, stored)
	return stored.ID, nil
}

func (r *PatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return r.filter(func(models.Patient) bool { return true })
}

func (r *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	found, err := r.filter(func(p models.Patient) bool { return p.ID == patientID })
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	found, err := r.filter(func(p models.Patient) bool { return p.Email == email })
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

func (r *PatientRepository) ExistsByID(ctx context.Context, patientID string) (bool, error) {
	found, err := r.filter(func(p models.Patient) bool { return p.ID == patientID })
	return len(found) > 0, err
}

func (r *PatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range r.patients {
		if r.patients[i].ID == patient.ID {
			r.patients[i] = *patient
		}
	}
	return nil
}

func (r *PatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	kept := r.patients[:0]
	for _, patient := range r.patients {
		if patient.ID != patientID {
			kept = append(kept, patient)
		}
	}
	r.patients = kept
	return nil
}

func (r *PatientRepository) FindByAgeGreaterThan(ctx context.Context, age int) ([]models.Patient, error) {
	return r.filter(func(p models.Patient) bool { return p.Age > age })
}

func (r *PatientRepository) FindByGender(ctx context.Context, gender string) ([]models.Patient, error) {
	return r.filter(func(p models.Patient) bool { return strings.EqualFold(p.Gender, gender) })
}

func (r *PatientRepository) FindByNameContaining(ctx context.Context, keyword string) ([]models.Patient, error) {
	return r.filter(func(p models.Patient) bool {
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(keyword))
	})
}

func (r *PatientRepository) filter(match func(models.Patient) bool) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	patients := make([]models.Patient, 0)
	for _, patient := range r.patients {
		if match(patient) {
			patients = append(patients, patient)
		}
	}
	return patients, nil
}
