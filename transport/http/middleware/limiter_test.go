package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/config"
	otelMocks "rooming/infras/otel/mocks"
	cacheMocks "rooming/shared/cache/mocks"
	"rooming/shared/constant"
	"rooming/transport/http/middleware"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		disabled   bool
		setupMock  func(cache *cacheMocks.MockRedisCache)
		wantCode   int
		wantHeader map[string]string
	}{
		{
			name: "under the limit",
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:curl", 60).Return(int64(1), 60*time.Second, nil)
			},
			wantCode: http.StatusOK,
			wantHeader: map[string]string{
				constant.RequestHeaderRateLimit:          "2",
				constant.RequestHeaderRateLimitRemaining: "1",
				constant.RequestHeaderRateLimitWindow:    "60",
			},
		},
		{
			name: "over the limit",
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), 42*time.Second, nil)
			},
			wantCode: http.StatusTooManyRequests,
			wantHeader: map[string]string{
				constant.RequestHeaderRateLimitRemaining: "0",
				constant.RequestHeaderRetryAfter:         "42",
			},
		},
		{
			name: "counter store down",
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), time.Duration(0), errors.New("dial tcp: refused"))
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "disabled",
			disabled: true,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(cache)
			}

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = !tt.disabled
			cfg.App.RateLimiter.MaxRequests = 2
			cfg.App.RateLimiter.WindowSeconds = 60

			appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)
			handler := appMiddleware.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "curl")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)

			for key, value := range tt.wantHeader {
				assert.Equal(t, value, recorder.Header().Get(key), key)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)
	handler := appMiddleware.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}
