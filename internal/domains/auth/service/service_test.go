package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/config"
	jwtMocks "rooming/infras/jwt/mocks"
	"rooming/infras/otel/mocks"
	"rooming/internal/domains/auth/model/dto"
	"rooming/internal/domains/auth/service"
	userMocks "rooming/internal/domains/user/mocks"
	userModel "rooming/internal/domains/user/model"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
	"rooming/shared/password"
)

// bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	req := dto.RegisterRequest{Username: "planner", Email: "Planner@example.com", Password: "secret1"}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "username or email taken",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(users.username = :username OR users.email = :email)", where)
						assert.Equal(t, "planner@example.com", args["email"])

						return true, nil
					})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "taken concurrently",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockUserRepo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "lookup fails",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "registered",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockUserRepo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) (userModel.User, error) {
						assert.NoError(t, password.Verify("secret1", user.Password))
						user.ID = 1

						return user, nil
					})
				mockJWT.EXPECT().GenerateToken(int64(1), "planner").Return("signed", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), req)

			switch {
			case tt.wantCode != 0:
				assert.True(t, failure.IsCode(err, tt.wantCode), err)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "signed", res.Token)
				assert.Equal(t, int64(1), res.User.ID)
				assert.Equal(t, "planner@example.com", res.User.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	validUser := userModel.User{ID: 7, Username: "planner", Email: "planner@example.com", Password: passwordHash}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "by username",
			req:  dto.LoginRequest{Username: "planner", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				mockJWT.EXPECT().GenerateToken(int64(7), "planner").Return("signed", nil)
			},
		},
		{
			name: "by email",
			req:  dto.LoginRequest{Username: "Planner@Example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (userModel.User, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "planner@example.com", args["email"])

						return validUser, nil
					})
				mockJWT.EXPECT().GenerateToken(int64(7), "planner").Return("signed", nil)
			},
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{Username: "ghost", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "planner", Password: "nope"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode), err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "signed", res.Token)
			assert.Equal(t, "planner", res.User.Username)
		})
	}
}
