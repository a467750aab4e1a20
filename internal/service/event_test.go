package service

import (
	"context"
	"testing"
	"time"

	"souvenaria-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEventServiceForTest() (*MockEventRepo, *MockFamilyRepo, EventService) {
	eventRepo := new(MockEventRepo)
	familyRepo := new(MockFamilyRepo)
	svc := NewEventService(eventRepo, familyRepo)
	return eventRepo, familyRepo, svc
}

func TestEventService_AddEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		eventRepo, familyRepo, svc := newEventServiceForTest()
		familyRepo.On("IsMember", ctx, "u1", "f1").Return(true, nil)
		eventRepo.On("Create", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)

		event, err := svc.AddEvent(ctx, "u1", "f1", "Birthday", "2030-05-02", "birthday")
		assert.NoError(t, err)
		assert.Equal(t, "2030-05-02", event.Date)
		eventRepo.AssertExpectations(t)
	})

	t.Run("NormalizesUnpaddedDate", func(t *testing.T) {
		eventRepo, familyRepo, svc := newEventServiceForTest()
		familyRepo.On("IsMember", ctx, "u1", "f1").Return(true, nil)
		eventRepo.On("Create", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)

		event, err := svc.AddEvent(ctx, "u1", "f1", "Birthday", "2030-5-2", "birthday")
		assert.NoError(t, err)
		assert.Equal(t, "2030-05-02", event.Date)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, _, svc := newEventServiceForTest()

		_, err := svc.AddEvent(ctx, "u1", "f1", "", "2030-05-02", "birthday")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.AddEvent(ctx, "u1", "f1", "Birthday", "", "birthday")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.AddEvent(ctx, "u1", "f1", "Birthday", "2030-05-02", "  ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("BadDate", func(t *testing.T) {
		_, _, svc := newEventServiceForTest()

		_, err := svc.AddEvent(ctx, "u1", "f1", "Birthday", "05/02/2030", "birthday")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("NonMember", func(t *testing.T) {
		eventRepo, familyRepo, svc := newEventServiceForTest()
		familyRepo.On("IsMember", ctx, "outsider", "f1").Return(false, nil)

		_, err := svc.AddEvent(ctx, "outsider", "f1", "Birthday", "2030-05-02", "birthday")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEventService_ListUpcomingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("QueriesFromToday", func(t *testing.T) {
		eventRepo, familyRepo, svc := newEventServiceForTest()
		familyRepo.On("IsMember", ctx, "u1", "f1").Return(true, nil)
		today := time.Now().Format(domain.EventDateLayout)
		eventRepo.On("ListUpcoming", ctx, "f1", today).Return([]domain.Event{
			{ID: "e1", FamilyID: "f1", Date: today},
		}, nil)

		events, err := svc.ListUpcomingEvents(ctx, "u1", "f1")
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		eventRepo.AssertExpectations(t)
	})

	t.Run("NonMember", func(t *testing.T) {
		_, familyRepo, svc := newEventServiceForTest()
		familyRepo.On("IsMember", ctx, "outsider", "f1").Return(false, nil)

		_, err := svc.ListUpcomingEvents(ctx, "outsider", "f1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
