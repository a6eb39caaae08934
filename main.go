package main

import (
	"os"
	"time"

	"devis-backend/billing"
	"devis-backend/controllers"
	"devis-backend/database"
	"devis-backend/logger"
	"devis-backend/middlewares"
	"devis-backend/routes"
	"devis-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	return utils.ParseIntDefault(os.Getenv(key), def)
}

func main() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "development"
	}
	logger.Init(stage)
	defer logger.Sync()

	// ---- Database
	database.Connect()
	if err := database.AutoMigrate(); err != nil {
		logger.Error("migration failed", zap.Error(err))
		panic(err)
	}

	// ---- Billing provider (optional; everything degrades to free tier)
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		provider, err := billing.NewStripeProvider(
			key,
			os.Getenv("STRIPE_PRO_PRICE_ID"),
			os.Getenv("CHECKOUT_SUCCESS_URL"),
			os.Getenv("CHECKOUT_CANCEL_URL"),
			os.Getenv("PORTAL_RETURN_URL"),
		)
		if err != nil {
			logger.Error("stripe configuration invalid", zap.Error(err))
			panic(err)
		}
		controllers.SetBillingProvider(provider)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, billing disabled")
	}

	// ---- Limits (configurable via env)
	// Fiber default BodyLimit is 4 * 1024 * 1024 bytes if unset (per docs).
	// We allow overriding with BODY_LIMIT_BYTES or BODY_LIMIT_MB.
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    bodyLimitBytes,
	})

	// ---- CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: false, // using Bearer tokens, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))

	// ---- Global rate limiter (applies to all routes; tune via env)
	rlMax := envInt("RATE_LIMIT_MAX", 60)                                            // default 60 reqs
	rlWindow := time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second // default 60s window
	app.Use(limiter.New(limiter.Config{
		Max:        rlMax,
		Expiration: rlWindow,
		// Default KeyGenerator = client IP; default 429 handler is fine.
		// See: https://docs.gofiber.io/api/middleware/limiter
	}))

	// ---- Routes
	routes.Register(app)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("API server starting", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		panic(err)
	}
}
