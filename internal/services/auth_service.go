package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/config"
	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
	"gmbtravels/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	// LoginAdmin authenticates against the admin collection only.
	LoginAdmin(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error)

	// LoginTeamMember authenticates against the team member collection.
	// Inactive members are rejected the same way as bad credentials.
	LoginTeamMember(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error)

	ChangePassword(ctx context.Context, userID primitive.ObjectID, role models.Role, request *models.ChangePasswordRequest) error
}

type authService struct {
	adminRepo interfaces.AdminRepository
	teamRepo  interfaces.TeamMemberRepository
	security  *config.SecurityConfig
	logger    *logger.Logger
}

func NewAuthService(adminRepo interfaces.AdminRepository, teamRepo interfaces.TeamMemberRepository, security *config.SecurityConfig, log *logger.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		teamRepo:  teamRepo,
		security:  security,
		logger:    log,
	}
}

func (s *authService) LoginAdmin(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !utils.CheckPassword(request.Password, admin.PasswordHash) {
		s.logger.WithField("username", request.Username).Warn("admin login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(admin.ID, admin.Username, admin.Role, s.security.JWTSecret, s.security.JWTAccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, time.Now().UTC()); err != nil {
		s.logger.WithError(err).Warn("failed to stamp admin last login")
	}

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    admin.Username,
		Role:        admin.Role,
	}, nil
}

func (s *authService) LoginTeamMember(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error) {
	member, err := s.teamRepo.GetByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up team member: %w", err)
	}

	if !member.Active || !utils.CheckPassword(request.Password, member.PasswordHash) {
		s.logger.WithField("username", request.Username).Warn("team member login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(member.ID, member.Username, member.Role, s.security.JWTSecret, s.security.JWTAccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.teamRepo.UpdateLastLogin(ctx, member.ID, time.Now().UTC()); err != nil {
		s.logger.WithError(err).Warn("failed to stamp team member last login")
	}

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    member.Username,
		Role:        member.Role,
		Name:        member.Name,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID primitive.ObjectID, role models.Role, request *models.ChangePasswordRequest) error {
	if role == models.RoleAdmin {
		return s.changeAdminPassword(ctx, userID, request)
	}
	return s.changeTeamMemberPassword(ctx, userID, request)
}

func (s *authService) changeAdminPassword(ctx context.Context, userID primitive.ObjectID, request *models.ChangePasswordRequest) error {
	admin, err := s.adminRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !utils.CheckPassword(request.CurrentPassword, admin.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(request.NewPassword, s.security.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.adminRepo.UpdatePassword(ctx, userID, hash)
}

func (s *authService) changeTeamMemberPassword(ctx context.Context, userID primitive.ObjectID, request *models.ChangePasswordRequest) error {
	member, err := s.teamRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !utils.CheckPassword(request.CurrentPassword, member.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(request.NewPassword, s.security.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.teamRepo.Update(ctx, userID, map[string]interface{}{"passwordHash": hash})
}
