package main

import (
	"log"
	"time"

	"fintrack-be/internal/auth"
	"fintrack-be/internal/config"
	"fintrack-be/internal/database"
	"fintrack-be/internal/graph"
	"fintrack-be/internal/middleware"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/service"
	"fintrack-be/internal/session"
	"fintrack-be/internal/static"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/handler"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize session store (fall back to in-memory if Redis is unavailable)
	sessionStore, err := session.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Using in-memory sessions.", err)
		sessionStore = session.NewMemoryStore()
	} else {
		log.Println("Connected to Redis session store")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	transactionService := service.NewTransactionService(transactionRepo)

	// Build the GraphQL schema
	resolver := graph.NewResolver(authService, transactionService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	graphqlHandler := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: gin.Mode() != gin.ReleaseMode,
	})

	cookieCfg := auth.CookieConfig{
		TTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
		Secure: cfg.CookieSecure,
	}

	// Initialize rate limiter for the GraphQL endpoint
	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Single GraphQL endpoint; the session middleware binds the auth
	// context before execution
	gql := router.Group("/graphql")
	gql.Use(
		rateLimiter.LimitMiddleware(),
		middleware.SessionMiddleware(sessionStore, userRepo, cookieCfg),
	)
	{
		gql.POST("", gin.WrapH(graphqlHandler))
		gql.GET("", gin.WrapH(graphqlHandler))
	}

	// Everything else is the bundled client application
	router.NoRoute(static.SPAHandler(cfg.FrontendDist))

	log.Printf("Server starting on http://localhost:%s/graphql", cfg.Port)
	router.Run(":" + cfg.Port)
}
