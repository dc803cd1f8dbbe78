package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/ratelimiter"
	"storefront/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T, catalogURL string) *application {
	t.Helper()

	cfg := config{
		addr:        ":0",
		env:         "test",
		frontendURL: "http://localhost:5173",
		catalog: catalogConfig{
			baseURL: catalogURL,
			timeout: 2 * time.Second,
		},
		checkout: checkoutConfig{
			secret:        "test-secret",
			processDelay:  10 * time.Millisecond,
			redirectDelay: 5 * time.Second,
		},
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 100,
			TimeFrame:            time.Second,
			Enabled:              false,
		},
	}

	return &application{
		config: cfg,
		store: store.NewStorage(store.CheckoutConfig{
			Secret:        cfg.checkout.secret,
			ProcessDelay:  cfg.checkout.processDelay,
			RedirectDelay: cfg.checkout.redirectDelay,
		}),
		catalog: catalog.NewClient(cfg.catalog.baseURL, cfg.catalog.timeout),
		logger:  zap.NewNop().Sugar(),
		limiter: ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
	}
}

func execRequest(t *testing.T, mux http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

// decodeData unwraps the {"data": ...} envelope into out.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func seedCatalog(app *application, products ...catalog.Product) {
	app.store.Catalog.CompleteFetch(products)
}
