package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vitalapp/vitalapp-api/internal/auth"
	"github.com/vitalapp/vitalapp-api/internal/config"
	"github.com/vitalapp/vitalapp-api/internal/db"
	"github.com/vitalapp/vitalapp-api/internal/handlers"
	"github.com/vitalapp/vitalapp-api/internal/middleware"
	"github.com/vitalapp/vitalapp-api/internal/repository"
	"github.com/vitalapp/vitalapp-api/internal/services"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET; token issuance will fail.")
	}

	var (
		adminRepo   repository.AdminRepository
		doctorRepo  repository.DoctorRepository
		patientRepo repository.PatientRepository
	)

	switch cfg.DBType {
	case "postgres":
		conn, err := db.ConnectPostgres(cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer conn.Close()
		if err := db.MigratePostgres(conn, cfg.MigrationsURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Successfully connected to Postgres!")

		adminRepo = repository.NewPostgresAdminRepo(conn)
		doctorRepo = repository.NewPostgresDoctorRepo(conn)
		patientRepo = repository.NewPostgresPatientRepo(conn)

	case "mongo":
		ctx := context.Background()
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(ctx)
		mdb := client.Database(cfg.MongoDatabase)
		if err := db.EnsureAccountIndexes(ctx, mdb); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
		log.Println("Successfully connected to MongoDB!")

		adminRepo = repository.NewMongoAdminRepo(mdb)
		doctorRepo = repository.NewMongoDoctorRepo(mdb)
		patientRepo = repository.NewMongoPatientRepo(mdb)

	default:
		log.Fatalf("DB_TYPE %q not supported", cfg.DBType)
	}

	// --- Core services, injected once at startup ---
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), auth.DefaultTokenTTL)

	adminSvc := services.NewAdminService(adminRepo, hasher)
	doctorSvc := services.NewDoctorService(doctorRepo, hasher)
	patientSvc := services.NewPatientService(patientRepo, hasher)
	loginSvc := services.NewLoginService(adminRepo, doctorRepo, patientRepo, hasher, tokens)

	h := handlers.NewHandler(adminSvc, doctorSvc, patientSvc, loginSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthGate(tokens, middleware.DefaultBypassPrefixes))
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", h.Login)
		}

		v1.POST("/patients/register", h.RegisterPatient)

		adminRoutes := v1.Group("/admin")
		{
			adminRoutes.GET("", h.ListAdmins)
			adminRoutes.GET("/:id", h.GetAdmin)
			adminRoutes.POST("", h.SaveAdmin)
			adminRoutes.PUT("/:id", h.UpdateAdmin)
			adminRoutes.DELETE("/:id", h.DeleteAdmin)
		}

		doctorRoutes := v1.Group("/doctor")
		{
			doctorRoutes.GET("", h.ListDoctors)
			doctorRoutes.GET("/:id", h.GetDoctor)
			doctorRoutes.POST("", h.SaveDoctor)
			doctorRoutes.PUT("/:id", h.UpdateDoctor)
			doctorRoutes.DELETE("/:id", h.DeleteDoctor)
		}

		patientRoutes := v1.Group("/patient")
		{
			patientRoutes.GET("", h.ListPatients)
			patientRoutes.GET("/:id", h.GetPatient)
			patientRoutes.POST("", h.SavePatient)
			patientRoutes.PUT("/:id", h.UpdatePatient)
			patientRoutes.DELETE("/:id", h.DeletePatient)
		}
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
