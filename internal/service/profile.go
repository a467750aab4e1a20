package service

import (
	"context"
	"fmt"
	"strings"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/repository"
)

type profileService struct {
	userRepo   repository.UserRepository
	familyRepo repository.FamilyRepository
}

func NewProfileService(userRepo repository.UserRepository, familyRepo repository.FamilyRepository) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		familyRepo: familyRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, []domain.Family, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if profile.Username == "" {
		profile.Username = domain.UnknownUsername
	}

	families, err := s.familyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, families, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	return s.userRepo.UpdateProfile(ctx, userID, username)
}
