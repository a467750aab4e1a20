package jobs

import (
	"context"
	"time"

	"souvenaria-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) HasPending(ctx context.Context, userID, familyID string) (bool, error) {
	args := m.Called(ctx, userID, familyID)
	return args.Bool(0), args.Error(1)
}
func (m *MockJoinRequestRepo) ListPendingByFamily(ctx context.Context, familyID string) ([]domain.PendingJoinRequest, error) {
	args := m.Called(ctx, familyID)
	return args.Get(0).([]domain.PendingJoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) Accept(ctx context.Context, requestID, familyID string) (*domain.Membership, error) {
	args := m.Called(ctx, requestID, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockJoinRequestRepo) Delete(ctx context.Context, requestID, familyID string) error {
	args := m.Called(ctx, requestID, familyID)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockSessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}
func (m *MockSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) ListUpcoming(ctx context.Context, familyID, from string) ([]domain.Event, error) {
	args := m.Called(ctx, familyID, from)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListOnDate(ctx context.Context, date string) ([]domain.Event, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockFamilyRepo
type MockFamilyRepo struct {
	mock.Mock
}

func (m *MockFamilyRepo) CreateWithCreator(ctx context.Context, family *domain.Family, creatorID string) error {
	args := m.Called(ctx, family, creatorID)
	return args.Error(0)
}
func (m *MockFamilyRepo) GetByID(ctx context.Context, id string) (*domain.Family, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}
func (m *MockFamilyRepo) ListByUser(ctx context.Context, userID string) ([]domain.Family, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Family), args.Error(1)
}
func (m *MockFamilyRepo) IsMember(ctx context.Context, userID, familyID string) (bool, error) {
	args := m.Called(ctx, userID, familyID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFamilyRepo) ListMembers(ctx context.Context, familyID string) ([]domain.Member, error) {
	args := m.Called(ctx, familyID)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockFamilyRepo) ListMemberEmails(ctx context.Context, familyID string) ([]string, error) {
	args := m.Called(ctx, familyID)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockFamilyRepo) RemoveMember(ctx context.Context, userID, familyID string) error {
	args := m.Called(ctx, userID, familyID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJoinRequestDecision(ctx context.Context, email, familyName, decision string) error {
	args := m.Called(ctx, email, familyName, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendEventReminder(ctx context.Context, email, eventName, eventDate, eventType string) error {
	args := m.Called(ctx, email, eventName, eventDate, eventType)
	return args.Error(0)
}
