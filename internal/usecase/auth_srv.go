package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/dto/response"
	"cinema-chain/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates a customer account. Admin roles are provisioned out of
// band, self-service registration never grants one.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, entity.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, entity.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour)
	session := &entity.Session{
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: expiresAt,
	}
	session.ID = uuid.New()
	session.CreatedAt = time.Now()
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		User:    response.UserToResponse(user),
		Token:   session.Token.String(),
		Expires: &expiresAt,
	}, nil
}

// Logout revokes the session. Revoking an unknown or already revoked token
// is a no-op so retries stay harmless.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
