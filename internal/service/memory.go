package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/logger"
	"souvenaria-backend/internal/repository"
	"souvenaria-backend/internal/storage"

	"github.com/google/uuid"
)

const mediaURLTTL = 15 * time.Minute

type memoryService struct {
	memoryRepo repository.MemoryRepository
	familyRepo repository.FamilyRepository
	store      storage.StorageInterface
}

func NewMemoryService(memoryRepo repository.MemoryRepository, familyRepo repository.FamilyRepository, store storage.StorageInterface) MemoryService {
	return &memoryService{
		memoryRepo: memoryRepo,
		familyRepo: familyRepo,
		store:      store,
	}
}

func (s *memoryService) CreateMemory(ctx context.Context, userID, familyID, title, contentType string) (*domain.Memory, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, "", fmt.Errorf("%w: memory title is required", domain.ErrValidation)
	}
	if contentType == "" {
		return nil, "", fmt.Errorf("%w: content type is required", domain.ErrValidation)
	}

	if err := s.requireMember(ctx, userID, familyID); err != nil {
		return nil, "", err
	}

	memory := &domain.Memory{
		FamilyID:    familyID,
		UserID:      userID,
		Title:       title,
		StorageKey:  fmt.Sprintf("%s/%s", familyID, uuid.New().String()),
		ContentType: contentType,
	}
	if err := s.memoryRepo.Create(ctx, memory); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.store.GenerateUploadURL(ctx, memory.StorageKey, contentType, mediaURLTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate upload url: %w", err)
	}

	logger.Info("Memory created", "memory_id", memory.ID, "family_id", familyID)
	return memory, uploadURL, nil
}

func (s *memoryService) ListMemories(ctx context.Context, userID, familyID string, favoritesOnly bool) ([]domain.Memory, error) {
	if err := s.requireMember(ctx, userID, familyID); err != nil {
		return nil, err
	}
	return s.memoryRepo.ListByFamily(ctx, familyID, favoritesOnly)
}

func (s *memoryService) SetFavorite(ctx context.Context, userID, memoryID string, favorite bool) error {
	memory, err := s.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		return err
	}
	if err := s.requireMember(ctx, userID, memory.FamilyID); err != nil {
		return err
	}
	return s.memoryRepo.SetFavorite(ctx, memoryID, favorite)
}

func (s *memoryService) GetDownloadURL(ctx context.Context, userID, memoryID string) (string, error) {
	memory, err := s.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		return "", err
	}
	if err := s.requireMember(ctx, userID, memory.FamilyID); err != nil {
		return "", err
	}
	return s.store.GenerateDownloadURL(ctx, memory.StorageKey, mediaURLTTL)
}

func (s *memoryService) requireMember(ctx context.Context, userID, familyID string) error {
	isMember, err := s.familyRepo.IsMember(ctx, userID, familyID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("%w: family %s", domain.ErrNotFound, familyID)
	}
	return nil
}
