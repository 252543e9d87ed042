// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/loonia/internal/platform/ctxutil"
	"github.com/taibuivan/loonia/internal/platform/metrics"
	"github.com/taibuivan/loonia/internal/platform/middleware"
	"github.com/taibuivan/loonia/pkg/uuid"
)

/*
TestRequestID verifies that valid client IDs are kept and anything else is replaced.
*/
func TestRequestID(t *testing.T) {
	client := uuid.New()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"missing", "", false},
		{"malformed", "not-a-uuid", false},
		{"valid", client, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				seen = ctxutil.GetRequestID(request.Context())
			}))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("X-Request-ID", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.True(t, uuid.IsValid(seen))
			assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			}
		})
	}
}

/*
TestMetrics_RouteLabel verifies that requests are counted by route pattern.
*/
func TestMetrics_RouteLabel(t *testing.T) {
	m := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.Metrics(m))
	router.Get("/parts/{number}", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/parts/1", "/parts/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

/*
TestCORS_Preflight answers OPTIONS requests from allowed origins.
*/
func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(allowList{"https://parts.example"})(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	request := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	request.Header.Set("Origin", "https://parts.example")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://parts.example", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestRealIP prefers proxy headers over the remote address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.3")
	assert.Equal(t, "198.51.100.3", middleware.RealIP(request))
}

type allowList []string

func (list allowList) IsDevelopment() bool { return false }

func (list allowList) OriginAllowed(origin string) bool {
	for _, allowed := range list {
		if allowed == origin {
			return true
		}
	}
	return false
}
