package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"REDIS_URL",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	config.InitMongoClient()
}

func setupRouter(grants *services.GrantStore) *gin.Engine {
	userRepo := repository.GetUserRepo(config.MongoClient)
	notesRepo := repository.GetNotesRepo(config.MongoClient)

	authService := &usecase.AuthService{
		UsersRepo: userRepo,
		Grants:    grants,
	}
	notesService := &usecase.NotesService{
		NotesRepo: notesRepo,
		Grants:    grants,
	}
	healthHandler := handler.NewHealthHandler(config.MongoClient)

	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, authService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, authService)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(userRepo))
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/set-private-password", func(c *gin.Context) {
				handler.SetPrivatePasswordHandler(c, authService)
			})
			auth.POST("/validate-private-password", func(c *gin.Context) {
				handler.ValidatePrivatePasswordHandler(c, authService)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}
	}

	return router
}

func main() {
	// The unique email index is what enforces one account per address
	dbName := utils.GetEnvAsString("MONGO_DB", "notes")
	if err := repository.SetupIndexes(config.MongoClient.Database(dbName)); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	grantTTL := utils.GetEnvAsDuration("PRIVATE_GRANT_TTL", 600*time.Second)
	grants, err := services.NewGrantStore(os.Getenv("REDIS_URL"), grantTTL)
	if err != nil {
		log.Fatalf("Failed to initialize private grant store: %v", err)
	}

	router := setupRouter(grants)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
