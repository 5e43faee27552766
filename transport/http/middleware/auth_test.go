package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/infras/jwt"
	jwtMocks "rooming/infras/jwt/mocks"
	otelMocks "rooming/infras/otel/mocks"
	"rooming/permissions"
	"rooming/shared/constant"
	"rooming/transport/http/middleware"
)

func newAuthRouter(t *testing.T, perms *permissions.PermissionData) (*jwtMocks.MockJWT, http.Handler) {
	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, otelMocks.NewOtel(), perms)

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		api.Use(authMiddleware.Auth)
		api.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		api.Get("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "user=%v name=%v", r.Context().Value(constant.ContextKeyUserID), r.Context().Value(constant.ContextKeyUsername))
		})
	})

	return jwtService, router
}

func TestAuth(t *testing.T) {
	perms, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/api/auth/login","method":"POST","skip":true}]}`))
	assert.NoError(t, err)

	tests := []struct {
		name      string
		method    string
		target    string
		header    string
		setupMock func(jwtService *jwtMocks.MockJWT)
		wantCode  int
		wantBody  string
	}{
		{
			name:     "public route needs no token",
			method:   http.MethodPost,
			target:   "/api/auth/login",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing header",
			method:   http.MethodGet,
			target:   "/api/events/1",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Access token required"}`,
		},
		{
			name:     "header without bearer prefix",
			method:   http.MethodGet,
			target:   "/api/events/1",
			header:   "Token abc",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid authorization header format"}`,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			target: "/api/events/1",
			header: "Bearer old",
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken("old").Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Token has expired"}`,
		},
		{
			name:   "tampered token",
			method: http.MethodGet,
			target: "/api/events/1",
			header: "Bearer forged",
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken("forged").Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid token"}`,
		},
		{
			name:   "claims without a username",
			method: http.MethodGet,
			target: "/api/events/1",
			header: "Bearer partial",
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken("partial").Return(&jwt.Claims{UserID: 4}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid token claims"}`,
		},
		{
			name:   "valid token",
			method: http.MethodGet,
			target: "/api/events/1",
			header: "Bearer good",
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken("good").Return(&jwt.Claims{UserID: 4, Username: "planner"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "user=4 name=planner",
		},
		{
			name:     "unknown route falls through to not found",
			method:   http.MethodGet,
			target:   "/api/nowhere",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService, router := newAuthRouter(t, perms)

			if tt.setupMock != nil {
				tt.setupMock(jwtService)
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuth_SkipAll(t *testing.T) {
	_, router := newAuthRouter(t, &permissions.PermissionData{Skip: true})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/events/1", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
