package main

import (
	"context"
	"fmt"
	"healthcare-service/internal/app/config"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/app/delivery/http/controllers"
	"healthcare-service/internal/app/delivery/http/middlewares"
	"healthcare-service/internal/app/delivery/http/routers"
	"healthcare-service/internal/app/drivers/database"
	"healthcare-service/internal/app/drivers/logger"
	"healthcare-service/internal/app/drivers/messaging"
	"healthcare-service/internal/app/services/core/appointments"
	"healthcare-service/internal/app/services/core/doctors"
	"healthcare-service/internal/app/services/core/patients"
	"healthcare-service/internal/app/services/shared/events"
	"healthcare-service/internal/app/services/shared/redis"
	"healthcare-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	lifecycle := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		lifecycle.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		Lifecycle:      lifecycle,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		lifecycle.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		lifecycle.Printf("Server listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			lifecycle.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	lifecycle.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		lifecycle.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		lifecycle.Errorf("Error closing drivers: %v", err)
	}

	lifecycle.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	entityCache := redis.NewEntityCache(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.Cache.EntityTTLInMinutes)*time.Minute,
		bootstrap.Logger,
	)

	// Events
	var publisher contracts.EventPublisher = events.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		channel, err := bootstrap.RabbitMQ.Channel()
		if err != nil {
			return err
		}
		publisher, err = events.NewRabbitMQPublisher(channel, bootstrap.InternalConfig.Events.Exchange)
		if err != nil {
			return err
		}
	}
	notifier := events.NewNotifier(publisher, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, entityCache, notifier, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, requestTimeout)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, entityCache, notifier, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, requestTimeout)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, entityCache, notifier, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, requestTimeout)

	// Health
	healthController := controllers.NewHealthController(
		bootstrap.Logger,
		bootstrap.InternalConfig.App.Version,
		map[string]controllers.HealthCheck{
			constvars.HealthComponentMongoDB: func(ctx context.Context) error {
				return bootstrap.MongoDB.Ping(ctx, readpref.Primary())
			},
			constvars.HealthComponentRedis: redisRepository.Ping,
		},
		requestTimeout,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		doctorController,
		patientController,
		appointmentController,
		healthController,
	)
	return nil
}
