package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "rooming/infras/otel/mocks"
	authMocks "rooming/internal/domains/auth/mocks"
	"rooming/internal/domains/auth/model/dto"
	userDto "rooming/internal/domains/user/model/dto"
	"rooming/internal/handlers/auth"
	"rooming/shared/failure"
)

func TestHandler_Auth(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		body      string
		setupMock func(svc *authMocks.MockAuthService)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "register",
			target: "/auth/register",
			body:   `{"username":"alice","email":"alice@x.com","password":"secret123"}`,
			setupMock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "secret123"}).
					Return(dto.AuthResponse{Token: "signed", User: userDto.UserResponse{ID: 1, Username: "alice"}}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"token":"signed"`,
		},
		{
			name:     "register rejects a short password",
			target:   "/auth/register",
			body:     `{"username":"alice","email":"alice@x.com","password":"123"}`,
			wantCode: http.StatusBadRequest,
			wantBody: "password must be greater than or equal to 6",
		},
		{
			name:   "register conflict",
			target: "/auth/register",
			body:   `{"username":"alice","email":"alice@x.com","password":"secret123"}`,
			setupMock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(dto.AuthResponse{}, failure.Conflict("Username or email already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "login",
			target: "/auth/login",
			body:   `{"username":"alice","password":"secret123"}`,
			setupMock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Username: "alice", Password: "secret123"}).
					Return(dto.AuthResponse{Token: "signed"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "Login successful",
		},
		{
			name:   "login with a wrong password",
			target: "/auth/login",
			body:   `{"username":"alice","password":"wrong"}`,
			setupMock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.AuthResponse{}, failure.InvalidCredentials)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid credentials"}`,
		},
		{
			name:     "login with a malformed body",
			target:   "/auth/login",
			body:     `{"username":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := authMocks.NewMockAuthService(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			handler := auth.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}
