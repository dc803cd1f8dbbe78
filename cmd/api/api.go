package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/ratelimiter"
	"storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type application struct {
	config  config
	store   store.Storage
	catalog *catalog.Client
	logger  *zap.SugaredLogger
	limiter ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	frontendURL string
	catalog     catalogConfig
	checkout    checkoutConfig
	rateLimiter ratelimiter.Config
}

type catalogConfig struct {
	baseURL string
	timeout time.Duration
}

type checkoutConfig struct {
	secret        string
	processDelay  time.Duration
	redirectDelay time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.config.frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.listProductsHandler)
			r.Post("/refresh", app.refreshCatalogHandler)
			r.Get("/categories", app.listCategoriesHandler)
			r.Put("/filter", app.setCategoryFilterHandler)
			r.Get("/{productID}", app.getProductHandler)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", app.getCartHandler)
			r.Delete("/", app.clearCartHandler)
			r.Post("/items", app.addCartItemHandler)
			r.Patch("/items/{productID}", app.updateCartItemHandler)
			r.Delete("/items/{productID}", app.removeCartItemHandler)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", app.getWishlistHandler)
			r.Post("/", app.addWishlistEntryHandler)
			r.Get("/{productID}", app.wishlistContainsHandler)
			r.Delete("/{productID}", app.removeWishlistEntryHandler)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", app.checkoutStatusHandler)
			r.Post("/", app.submitCheckoutHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
