package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"quiz-backend/internal/config"
	"quiz-backend/internal/db"
	"quiz-backend/internal/event"
	"quiz-backend/internal/handlers"
	"quiz-backend/internal/middleware"
	"quiz-backend/internal/repository"
	"quiz-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() {
		if err := db.Disconnect(client); err != nil {
			log.Printf("mongodb disconnect: %v", err)
		}
	}()
	database := client.Database(cfg.MongoDB)
	log.Printf("Connected to MongoDB database %q", cfg.MongoDB)

	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	quizService := service.NewQuizService(quizRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo)
	attemptService := service.NewAttemptService(questionRepo, attemptRepo)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Quiz Backend API running"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	setupRoutes(r, cfg.JWTSecret, authHandler, quizHandler, questionHandler, attemptHandler, publisher)

	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func setupRoutes(
	r *gin.Engine,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	attemptHandler *handlers.AttemptHandler,
	publisher *event.Publisher,
) {
	authRequired := middleware.Auth(jwtSecret)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			authHandler.Register(c)
			if publisher != nil && c.Writer.Status() == http.StatusCreated {
				publisher.Publish("user.registered", gin.H{"timestamp": time.Now()})
			}
		})
		auth.POST("/login", authHandler.Login)
	}

	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("", authRequired, quizHandler.ListQuizzes)
		quizzes.POST("", authRequired, func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			if publisher != nil && c.Writer.Status() == http.StatusCreated {
				publisher.Publish("quiz.created", gin.H{
					"owner_id":  c.GetString(middleware.UserIDKey),
					"timestamp": time.Now(),
				})
			}
		})
		quizzes.GET("/:quizId", quizHandler.GetQuiz)
		quizzes.PUT("/:quizId", authRequired, quizHandler.UpdateQuiz)
		quizzes.DELETE("/:quizId", authRequired, func(c *gin.Context) {
			quizHandler.DeleteQuiz(c)
			if publisher != nil && c.Writer.Status() == http.StatusNoContent {
				publisher.Publish("quiz.deleted", gin.H{
					"quiz_id":   c.Param("quizId"),
					"timestamp": time.Now(),
				})
			}
		})

		quizzes.GET("/:quizId/questions", questionHandler.ListQuestions)
		quizzes.POST("/:quizId/questions", authRequired, questionHandler.CreateQuestion)

		quizzes.POST("/:quizId/attempts", func(c *gin.Context) {
			attemptHandler.SubmitAttempt(c)
			if publisher != nil && c.Writer.Status() == http.StatusCreated {
				publisher.Publish("attempt.submitted", gin.H{
					"quiz_id":   c.Param("quizId"),
					"timestamp": time.Now(),
				})
			}
		})
		quizzes.GET("/:quizId/analytics", attemptHandler.GetAnalytics)
	}

	questions := api.Group("/questions", authRequired)
	{
		questions.PUT("/:id", questionHandler.UpdateQuestion)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}
}
