package doctors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"healthcare-service/internal/app/contracts/fakes"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/app/services/shared/events"
	"healthcare-service/internal/app/services/shared/redis"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type doctorFixture struct {
	repository *fakes.DoctorRepository
	redis      *fakes.RedisRepository
	publisher  *fakes.EventPublisher
	usecase    *doctorUsecase
}

func newDoctorFixture() *doctorFixture {
	logger := zap.NewNop()
	fixture := &doctorFixture{
		repository: fakes.NewDoctorRepository(),
		redis:      fakes.NewRedisRepository(),
		publisher:  &fakes.EventPublisher{},
	}
	fixture.usecase = NewDoctorUsecase(
		fixture.repository,
		redis.NewEntityCache(fixture.redis, time.Minute, logger),
		events.NewNotifier(fixture.publisher, logger),
		logger,
	).(*doctorUsecase)
	return fixture
}

// racingDoctorRepository runs afterRead once, between the store read and the
// cache fill of FindByID.
type racingDoctorRepository struct {
	*fakes.DoctorRepository
	afterRead func()
}

func (r *racingDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := r.DoctorRepository.FindByID(ctx, doctorID)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return doctor, err
}

func doctorRequest(name, specialization string, years int) *requests.Doctor {
	return &requests.Doctor{
		Name:              name,
		Specialization:    specialization,
		YearsOfExperience: &years,
		Email:             strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@clinic.test",
		PhoneNumber:       "5551234567",
	}
}

func TestDoctorUsecaseCrud(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "HCS_test")

	t.Run("Create Then Get Returns Every Field", func(t *testing.T) {
		f := newDoctorFixture()

		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, *created, *found)
		assert.Equal(t, "Cardiology", found.Specialization)
		assert.Equal(t, 10, found.YearsOfExperience)
		assert.Equal(t, []string{constvars.EventDoctorCreated}, f.publisher.Types())
		assert.Equal(t, "HCS_test", f.publisher.Events[0].RequestID)
	})

	t.Run("Get Absent Returns Nil", func(t *testing.T) {
		f := newDoctorFixture()

		found, err := f.usecase.FindByID(ctx, primitive.NewObjectID().Hex())

		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Update Overwrites Fields And Preserves Id", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)

		updated, err := f.usecase.UpdateDoctor(ctx, created.ID, doctorRequest("Alice Jones", "Neurology", 12))
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Alice Jones", found.Name)
		assert.Equal(t, "Neurology", found.Specialization)
		assert.Equal(t, 12, found.YearsOfExperience)
		assert.Equal(t, "alice.jones@clinic.test", found.Email)
		assert.Equal(t, []string{constvars.EventDoctorCreated, constvars.EventDoctorUpdated}, f.publisher.Types())
	})

	t.Run("Update Absent Is Not Found And Leaves Store Unchanged", func(t *testing.T) {
		f := newDoctorFixture()
		_, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)

		missingID := primitive.NewObjectID().Hex()
		updated, err := f.usecase.UpdateDoctor(ctx, missingID, doctorRequest("Bob Jones", "Neurology", 1))

		assert.Nil(t, updated)
		assert.True(t, errors.Is(err, exceptions.ErrNotFound))
		assert.Equal(t, 1, f.repository.Count())
		all, _ := f.usecase.FindAll(ctx)
		assert.Equal(t, "Alice Smith", all[0].Name)
	})

	t.Run("Delete Then Get Returns Nil", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)

		require.NoError(t, f.usecase.DeleteDoctor(ctx, created.ID))

		found, err := f.usecase.FindByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Nil(t, found)
		assert.Equal(t, constvars.EventDoctorDeleted, f.publisher.Types()[1])
	})

	t.Run("Delete Absent Is Not Found And Leaves Store Unchanged", func(t *testing.T) {
		f := newDoctorFixture()
		_, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)

		err = f.usecase.DeleteDoctor(ctx, "not-an-id")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Doctor not found with ID: not-an-id", customErr.ClientMessage)
		assert.Equal(t, 1, f.repository.Count())
	})

	t.Run("Find All Empty Store", func(t *testing.T) {
		f := newDoctorFixture()

		all, err := f.usecase.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("Store Failure Propagates", func(t *testing.T) {
		f := newDoctorFixture()
		f.repository.Err = exceptions.ErrMongoDBFindDocument(errors.New("connection refused"))

		all, err := f.usecase.FindAll(ctx)

		assert.Nil(t, all)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestDoctorUsecaseCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Get Reads Through Cache", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorFormat, created.ID)

		_, err = f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, f.redis.Has(cacheKey), "doctor should be cached after the first read")

		f.repository.Err = errors.New("store unavailable")
		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err, "cached doctor should be served without the store")
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("Update Refreshes And Delete Marks Cache", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorFormat, created.ID)

		_, err = f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		_, err = f.usecase.UpdateDoctor(ctx, created.ID, doctorRequest("Alice Jones", "Neurology", 12))
		require.NoError(t, err)
		assert.Contains(t, f.redis.Values[cacheKey], "Alice Jones")

		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Jones", found.Name, "stale cached doctor must not be served after update")

		require.NoError(t, f.usecase.DeleteDoctor(ctx, created.ID))
		found, err = f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Read Racing A Delete Does Not Refill Cache", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		racing := &racingDoctorRepository{DoctorRepository: f.repository}
		f.usecase.DoctorRepository = racing
		racing.afterRead = func() {
			require.NoError(t, f.usecase.DeleteDoctor(ctx, created.ID))
		}

		_, err = f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)

		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found, "a deleted doctor must not come back from the cache")
	})

	t.Run("Read Racing An Update Does Not Refill Cache", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		racing := &racingDoctorRepository{DoctorRepository: f.repository}
		f.usecase.DoctorRepository = racing
		racing.afterRead = func() {
			_, err := f.usecase.UpdateDoctor(ctx, created.ID, doctorRequest("Alice Jones", "Neurology", 12))
			require.NoError(t, err)
		}

		_, err = f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)

		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Jones", found.Name)
	})

	t.Run("Cache Failure Falls Back To Store", func(t *testing.T) {
		f := newDoctorFixture()
		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		f.redis.Err = errors.New("redis down")

		found, err := f.usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", found.Name)

		require.NoError(t, f.usecase.DeleteDoctor(ctx, created.ID))
	})

	t.Run("Publish Failure Does Not Fail Create", func(t *testing.T) {
		f := newDoctorFixture()
		f.publisher.Err = errors.New("broker down")

		created, err := f.usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Works Without Cache Or Publisher", func(t *testing.T) {
		repository := fakes.NewDoctorRepository()
		usecase := NewDoctorUsecase(repository, nil, nil, zap.NewNop())

		created, err := usecase.CreateDoctor(ctx, doctorRequest("Alice Smith", "Cardiology", 10))
		require.NoError(t, err)
		found, err := usecase.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})
}

func TestDoctorUsecaseSearch(t *testing.T) {
	ctx := context.Background()
	f := newDoctorFixture()
	for _, request := range []*requests.Doctor{
		doctorRequest("Alice Smith", "Cardiology", 5),
		doctorRequest("Bob Jones", "Neurology", 12),
		doctorRequest("Carol Smithers", "cardiology", 2),
	} {
		_, err := f.usecase.CreateDoctor(ctx, request)
		require.NoError(t, err)
	}

	t.Run("Name Search Is Case Insensitive Substring", func(t *testing.T) {
		for _, keyword := range []string{"smith", "SMITH", "Smith"} {
			doctors, err := f.usecase.FindByNameContaining(ctx, keyword)
			require.NoError(t, err)
			require.Len(t, doctors, 2, "keyword %q", keyword)
			assert.Equal(t, "Alice Smith", doctors[0].Name)
		}

		doctors, err := f.usecase.FindByNameContaining(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Bob Jones", doctors[0].Name)

		doctors, err = f.usecase.FindByNameContaining(ctx, "dave")
		require.NoError(t, err)
		assert.Empty(t, doctors)
	})

	t.Run("Specialization Ignores Case", func(t *testing.T) {
		doctors, err := f.usecase.FindBySpecialization(ctx, "CARDIOLOGY")
		require.NoError(t, err)
		assert.Len(t, doctors, 2)
	})

	t.Run("Experience Threshold Excludes Boundary", func(t *testing.T) {
		doctors, err := f.usecase.FindByExperienceGreaterThan(ctx, 5)
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Bob Jones", doctors[0].Name)

		doctors, err = f.usecase.FindByExperienceGreaterThan(ctx, 4)
		require.NoError(t, err)
		assert.Len(t, doctors, 2)
	})
}
