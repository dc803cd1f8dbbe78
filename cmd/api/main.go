package main

import (
	"expvar"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/ratelimiter"
	"storefront/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.1.0"

func envString(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
		log.Printf("invalid %s, defaulting to %d", key, fallback)
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
		log.Printf("invalid %s, defaulting to %t", key, fallback)
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		log.Printf("invalid %s, defaulting to %s", key, fallback)
	}
	return fallback
}

// NewLogger creates a zap console logger with colored levels.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	cfg := config{
		addr:        envString("ADDR", ":8080"),
		env:         envString("ENV", "development"),
		frontendURL: envString("FRONTEND_URL", "http://localhost:5173"),
		catalog: catalogConfig{
			baseURL: envString("CATALOG_URL", "https://fakestoreapi.com"),
			timeout: envDuration("CATALOG_TIMEOUT", 30*time.Second),
		},
		checkout: checkoutConfig{
			secret:        envString("CHECKOUT_NUMBER_SECRET", "storefront-dev-secret"),
			processDelay:  envDuration("CHECKOUT_PROCESSING_DELAY", 3*time.Second),
			redirectDelay: envDuration("CHECKOUT_REDIRECT_DELAY", 3*time.Second),
		},
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: envInt("RATELIMITER_REQUESTS_COUNT", 200),
			TimeFrame:            5 * time.Second,
			Enabled:              envBool("RATE_LIMITER_ENABLED", false),
		},
	}

	logger, err := NewLogger()
	if err != nil {
		log.Fatalf("could not create logger: %v", err)
	}
	defer logger.Sync()

	app := &application{
		config: cfg,
		store: store.NewStorage(store.CheckoutConfig{
			Secret:        cfg.checkout.secret,
			ProcessDelay:  cfg.checkout.processDelay,
			RedirectDelay: cfg.checkout.redirectDelay,
		}),
		catalog: catalog.NewClient(cfg.catalog.baseURL, cfg.catalog.timeout),
		logger:  logger,
		limiter: ratelimiter.NewFixedWindowLimiter(
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		),
	}

	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	// Load the catalog once at startup, the way the frontend fetched on
	// mount. There is no automatic retry; callers hit /products/refresh.
	app.fetchCatalogInBackground()

	mux := app.mount()
	logger.Fatal(app.run(mux))
}
