package fakes

import (
	"context"
	"strings"
	"sync"

	"healthcare-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorRepository keeps doctors in memory and mirrors the filter semantics of the mongo queries.
// Err, when set, is returned by every call.
type DoctorRepository struct {
	mu      sync.Mutex
	doctors map[string]models.Doctor
	order   []string
	Err     error
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{doctors: make(map[string]models.Doctor)}
}

func (r *DoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	id := primitive.NewObjectID().Hex()
	stored := *doctor
	stored.ID = id
	r.doctors[id] = stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.filter(func(models.Doctor) bool { return true })
}

func (r *DoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	doctor, ok := r.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	doctors, err := r.filter(func(d models.Doctor) bool { return d.Email == email })
	if err != nil || len(doctors) == 0 {
		return nil, err
	}
	return &doctors[0], nil
}

func (r *DoctorRepository) ExistsByID(ctx context.Context, doctorID string) (bool, error) {
	doctor, err := r.FindByID(ctx, doctorID)
	return doctor != nil, err
}

func (r *DoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *DoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.doctors, doctorID)
	return nil
}

func (r *DoctorRepository) FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	return r.filter(func(d models.Doctor) bool { return strings.EqualFold(d.Specialization, specialization) })
}

func (r *DoctorRepository) FindByExperienceGreaterThan(ctx context.Context, years int) ([]models.Doctor, error) {
	return r.filter(func(d models.Doctor) bool { return d.YearsOfExperience > years })
}

func (r *DoctorRepository) FindByNameContaining(ctx context.Context, keyword string) ([]models.Doctor, error) {
	return r.filter(func(d models.Doctor) bool {
		return strings.Contains(strings.ToLower(d.Name), strings.ToLower(keyword))
	})
}

func (r *DoctorRepository) filter(match func(models.Doctor) bool) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	doctors := make([]models.Doctor, 0)
	for _, id := range r.order {
		doctor, ok := r.doctors[id]
		if ok && match(doctor) {
			doctors = append(doctors, doctor)
		}
	}
	return doctors, nil
}

func (r *DoctorRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.doctors)
}
