package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/logger"
	"souvenaria-backend/internal/repository"
)

type eventService struct {
	eventRepo  repository.EventRepository
	familyRepo repository.FamilyRepository
}

func NewEventService(eventRepo repository.EventRepository, familyRepo repository.FamilyRepository) EventService {
	return &eventService{
		eventRepo:  eventRepo,
		familyRepo: familyRepo,
	}
}

func (s *eventService) AddEvent(ctx context.Context, userID, familyID, name, date, eventType string) (*domain.Event, error) {
	name = strings.TrimSpace(name)
	eventType = strings.TrimSpace(eventType)
	date = strings.TrimSpace(date)
	if name == "" || date == "" || eventType == "" {
		return nil, fmt.Errorf("%w: event name, date and type are required", domain.ErrValidation)
	}

	normalized, err := domain.NormalizeEventDate(date)
	if err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, userID, familyID); err != nil {
		return nil, err
	}

	event := &domain.Event{
		FamilyID: familyID,
		Name:     name,
		Date:     normalized,
		Type:     eventType,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	logger.Info("Event added", "event_id", event.ID, "family_id", familyID, "date", event.Date)
	return event, nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context, userID, familyID string) ([]domain.Event, error) {
	if err := s.requireMember(ctx, userID, familyID); err != nil {
		return nil, err
	}
	today := time.Now().Format(domain.EventDateLayout)
	return s.eventRepo.ListUpcoming(ctx, familyID, today)
}

func (s *eventService) requireMember(ctx context.Context, userID, familyID string) error {
	isMember, err := s.familyRepo.IsMember(ctx, userID, familyID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("%w: family %s", domain.ErrNotFound, familyID)
	}
	return nil
}
