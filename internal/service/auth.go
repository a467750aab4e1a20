package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/logger"
	"souvenaria-backend/internal/repository"
	"souvenaria-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

const minPasswordLength = 8

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
	}
}

func (s *authService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: an account with this email already exists", domain.ErrConflict)
		}
		return nil, err
	}

	logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil || claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	session, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(refreshToken))
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if session.ExpiresOn.Before(time.Now()) {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	// Rotate: the spent grant is revoked before a new one is issued.
	if err := s.sessionRepo.DeleteByTokenHash(ctx, session.TokenHash); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", "", err
	}

	return s.issueSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	err := s.sessionRepo.DeleteByTokenHash(ctx, hashToken(refreshToken))
	if errors.Is(err, domain.ErrNotFound) {
		// Already logged out; nothing to revoke.
		return nil
	}
	return err
}

func (s *authService) issueSession(ctx context.Context, user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	session := &domain.Session{
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresOn: time.Now().Add(security.RefreshTokenTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", "", fmt.Errorf("persist session: %w", err)
	}

	return access, refresh, nil
}

// hashToken keeps raw refresh tokens out of the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
