package main

import (
	"context"
	"log"
	"os"
	"time"

	"khayl/internal/auth"
	"khayl/internal/db"
	"khayl/internal/middleware"
	"khayl/internal/profile"
	"khayl/internal/refdata"
	"khayl/internal/services"
	"khayl/internal/storage"
	"khayl/internal/wizard"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"REDIS_ADDR",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REDIS ─────────────────────────
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("❌ Redis connection failed:", err)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Onboarding-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	codeStore := auth.NewRedisCodeStore(rdb)
	authService := auth.NewService(userRepo, codeStore, auth.LogCodeSender{})
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/verify", authHandler.Verify)

		verification := authGroup.Group("")
		verification.Use(middleware.AuthMiddleware())
		{
			verification.POST("/send-verification", authHandler.SendVerification)
			verification.POST("/verify-code", authHandler.VerifyCode)
		}
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	serviceRepo := services.NewPostgresRepository(pgDB)
	refRepo := refdata.NewPostgresRepository(pgDB)
	profileStore := profile.NewPostgresStore(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	serviceService := services.NewService(serviceRepo)
	refService := refdata.NewService(refRepo)

	// ───────────────────────── ONBOARDING WIZARD ─────────────────────────
	submitter := wizard.NewSubmitter(profileStore, r2Client, serviceService)
	sessions := wizard.NewSessionStore()
	wizardHandler := wizard.NewHandler(sessions, authService, submitter)

	onboarding := r.Group("/onboarding")
	{
		onboarding.POST("/start", wizardHandler.Start)
		onboarding.GET("/state", wizardHandler.GetState)
		onboarding.PUT("/signup", wizardHandler.UpdateSignUp)
		onboarding.PUT("/verification", wizardHandler.UpdateVerification)
		onboarding.PUT("/personal", wizardHandler.UpdatePersonal)
		onboarding.PUT("/location", wizardHandler.UpdateLocation)
		onboarding.PUT("/identity", wizardHandler.UpdateIdentity)
		onboarding.PUT("/details", wizardHandler.UpdateDetails)
		onboarding.POST("/next", wizardHandler.Next)
		onboarding.POST("/prev", wizardHandler.Prev)
		onboarding.POST("/resend-code", wizardHandler.ResendCode)
		onboarding.POST("/submit", wizardHandler.Submit)
	}

	// ───────────────────────── REFERENCE DATA ─────────────────────────
	refHandler := refdata.NewHandler(refService)

	reference := r.Group("/reference")
	{
		reference.GET("", refHandler.GetBundle)
		reference.GET("/governorates", refHandler.GetGovernorates)
		reference.GET("/cities", refHandler.GetCities)
	}

	// ───────────────────────── SERVICE LISTINGS ─────────────────────────
	serviceHandler := services.NewHandler(serviceService)

	r.GET("/services/:id", serviceHandler.Get)
	reference.GET("/service-catalog", serviceHandler.GetCatalog)

	mine := r.Group("/providers/services")
	mine.Use(
		middleware.AuthMiddleware(),
		middleware.RequireUserType("provider"),
	)
	{
		mine.GET("", serviceHandler.ListMine)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
