//go:build !cli
// +build !cli

package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"admybrand.GO/api"
	graphqlApi "admybrand.GO/api/graphql"
	"admybrand.GO/config"
	"admybrand.GO/core/auth"
	repository "admybrand.GO/model/repository/catalog"
	"admybrand.GO/service/cart"
	"admybrand.GO/service/forms"
	"admybrand.GO/service/theme"

	_ "admybrand.GO/api/cart"
	_ "admybrand.GO/api/catalog"
	_ "admybrand.GO/api/forms"
	_ "admybrand.GO/api/pricing"
	_ "admybrand.GO/api/theme"
	_ "admybrand.GO/custom"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if os.Getenv("SEED_CATALOG") != "off" {
		if err := repo.Seed(); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	signal := theme.SystemSignalFunc(func() bool {
		return config.GetEnv("SYSTEM_PREFERS_DARK", "true") != "false"
	})
	deps := &api.Deps{
		DB:    db,
		Carts: cart.NewStore(),
		Theme: theme.NewController(theme.NewStore(), signal),
		Forms: forms.NewClient(os.Getenv("FORMS_ENDPOINT")),
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, deps)

	graphqlApi.RegisterGraphQLRoutes(e, db)
	api.ApplyRoutes(e, deps)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
