package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"
	"rooming/config"
	"rooming/infras/jwt"
	"rooming/infras/otel"
	"rooming/internal/domains/auth/model/dto"
	userModel "rooming/internal/domains/user/model"
	userRepo "rooming/internal/domains/user/repository"
	"rooming/shared"
	"rooming/shared/constant"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
	"rooming/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

const errUserExists = "Username or email already exists"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := req.ToUserModel(constant.Empty)

	exists, err := s.userRepo.Exist(ctx, identityFilter(user.Username, user.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(errUserExists)
	}

	user.Password, err = password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.InsertReturning(ctx, user)
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict(errUserExists)
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(created)
}

// Login looks the identifier up as a username or an email. Every mismatch reports the same failure.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	identifier := strings.TrimSpace(req.Username)

	user, err := s.userRepo.Get(ctx, identityFilter(identifier, strings.ToLower(identifier)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("username", identifier).Msg("login attempt with unknown user")

		return res, failure.InvalidCredentials
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", identifier).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	return s.issue(user)
}

func (s *serviceImpl) issue(user userModel.User) (res dto.AuthResponse, err error) {
	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromModel(token, user)

	return res, nil
}

func identityFilter(username, email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: userModel.FieldUsername, Value: username, Operator: gDto.FilterOperatorEq, Table: userModel.TableName},
			gDto.Filter{Field: userModel.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: userModel.TableName},
		},
	}
}
