package main

import (
	"log"
	"net/http"

	"quiz-iq-backend/internal/config"
	"quiz-iq-backend/internal/database"
	"quiz-iq-backend/internal/handlers"
	"quiz-iq-backend/internal/middleware"
	"quiz-iq-backend/internal/repository"
	"quiz-iq-backend/internal/services"
	"quiz-iq-backend/internal/ws"

	_ "quiz-iq-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz IQ API
// @version         1.0
// @description     Quiz backend with AI question generation, IQ scoring and a ranked leaderboard
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	store := repository.NewGormStore(db)
	hub := ws.NewHub()

	authService := services.NewAuthService(store)
	resultService := services.NewResultService(store)
	generateService := services.NewGenerateService(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(generateService, resultService, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(resultService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/leaderboard", wsHandler.HandleWebSocket)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "quiz-iq-backend", "version": "1.0"})
	})

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	authed := r.Group("/", middleware.TokenAuth(store))
	{
		authed.POST("/generate-quiz", quizHandler.GenerateQuiz)
		authed.POST("/submit-result", quizHandler.SubmitResult)
		authed.GET("/api/leaderboard", leaderboardHandler.GetLeaderboard)
	}

	r.GET("/api/stats", leaderboardHandler.GetStats)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
