package service

import (
	"errors"

	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/repository"
	"github.com/teamnest/teamnest-backend/pkg/jwt"
	"github.com/teamnest/teamnest-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService registration, login and token refresh
type AuthService interface {
	Register(req *domain.RegisterRequest) (*domain.UserResponse, error)
	Login(req *domain.LoginRequest) (*domain.TokenPair, *domain.UserResponse, error)
	Refresh(refreshToken string) (*domain.TokenPair, error)
	GetProfile(userID string) (*domain.UserResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user with a bcrypt-hashed password
func (s *authService) Register(req *domain.RegisterRequest) (*domain.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUserID(req.UserID)
	if err != nil {
		logger.GetLogger().Error().Err(err).Msg("register: exists check failed")
		return nil, common.NewDatabaseError("failed to register user")
	}
	if exists {
		return nil, common.NewValidationError("user id already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewDatabaseError("failed to register user")
	}

	user := &domain.User{
		ID:           req.UserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		logger.GetLogger().Error().Err(err).Msg("register: create failed")
		return nil, common.NewDatabaseError("failed to register user")
	}

	return user.ToResponse(), nil
}

// Login verifies credentials and issues a token pair
func (s *authService) Login(req *domain.LoginRequest) (*domain.TokenPair, *domain.UserResponse, error) {
	user, err := s.userRepo.FindByUserID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewAuthorizationError("invalid credentials")
		}
		logger.GetLogger().Error().Err(err).Msg("login: lookup failed")
		return nil, nil, common.NewDatabaseError("failed to log in")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, common.NewAuthorizationError("invalid credentials")
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user.ToResponse(), nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *authService) Refresh(refreshToken string) (*domain.TokenPair, error) {
	userID, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.NewAuthorizationError("invalid refresh token")
	}

	user, err := s.userRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewAuthorizationError("invalid refresh token")
		}
		logger.GetLogger().Error().Err(err).Msg("refresh: lookup failed")
		return nil, common.NewDatabaseError("failed to refresh token")
	}

	return s.issueTokens(user)
}

// GetProfile returns the current user's profile
func (s *authService) GetProfile(userID string) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("user not found")
		}
		logger.GetLogger().Error().Err(err).Msg("profile: lookup failed")
		return nil, common.NewDatabaseError("failed to load profile")
	}
	return user.ToResponse(), nil
}

func (s *authService) issueTokens(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.jwtManager.GenerateToken(user.ID, user.Name, user.Level)
	if err != nil {
		return nil, common.NewDatabaseError("failed to issue token")
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, common.NewDatabaseError("failed to issue token")
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
