package http

import (
	"context"

	"souvenaria-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// MockFamilyService
type MockFamilyService struct {
	mock.Mock
}

func (m *MockFamilyService) CreateFamily(ctx context.Context, userID, name string) (*domain.Family, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}
func (m *MockFamilyService) GetFamily(ctx context.Context, userID, familyID string) (*domain.Family, error) {
	args := m.Called(ctx, userID, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}
func (m *MockFamilyService) ListMyFamilies(ctx context.Context, userID string) ([]domain.Family, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Family), args.Error(1)
}
func (m *MockFamilyService) RequestJoin(ctx context.Context, userID, familyID string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, userID, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockFamilyService) ListPendingRequests(ctx context.Context, callerID, familyID string) ([]domain.PendingJoinRequest, error) {
	args := m.Called(ctx, callerID, familyID)
	return args.Get(0).([]domain.PendingJoinRequest), args.Error(1)
}
func (m *MockFamilyService) AcceptRequest(ctx context.Context, callerID, requestID, familyID string) (*domain.Membership, error) {
	args := m.Called(ctx, callerID, requestID, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockFamilyService) RejectRequest(ctx context.Context, callerID, requestID, familyID string) error {
	args := m.Called(ctx, callerID, requestID, familyID)
	return args.Error(0)
}
func (m *MockFamilyService) ListMembers(ctx context.Context, callerID, familyID string) ([]domain.Member, error) {
	args := m.Called(ctx, callerID, familyID)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockFamilyService) RemoveMember(ctx context.Context, callerID, userID, familyID string) error {
	args := m.Called(ctx, callerID, userID, familyID)
	return args.Error(0)
}

// MockProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, []domain.Family, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Profile), args.Get(1).([]domain.Family), args.Error(2)
}
func (m *MockProfileService) UpdateProfile(ctx context.Context, userID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

// MockMemoryService
type MockMemoryService struct {
	mock.Mock
}

func (m *MockMemoryService) CreateMemory(ctx context.Context, userID, familyID, title, contentType string) (*domain.Memory, string, error) {
	args := m.Called(ctx, userID, familyID, title, contentType)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Memory), args.String(1), args.Error(2)
}
func (m *MockMemoryService) ListMemories(ctx context.Context, userID, familyID string, favoritesOnly bool) ([]domain.Memory, error) {
	args := m.Called(ctx, userID, familyID, favoritesOnly)
	return args.Get(0).([]domain.Memory), args.Error(1)
}
func (m *MockMemoryService) SetFavorite(ctx context.Context, userID, memoryID string, favorite bool) error {
	args := m.Called(ctx, userID, memoryID, favorite)
	return args.Error(0)
}
func (m *MockMemoryService) GetDownloadURL(ctx context.Context, userID, memoryID string) (string, error) {
	args := m.Called(ctx, userID, memoryID)
	return args.String(0), args.Error(1)
}

// MockEventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) AddEvent(ctx context.Context, userID, familyID, name, date, eventType string) (*domain.Event, error) {
	args := m.Called(ctx, userID, familyID, name, date, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) ListUpcomingEvents(ctx context.Context, userID, familyID string) ([]domain.Event, error) {
	args := m.Called(ctx, userID, familyID)
	return args.Get(0).([]domain.Event), args.Error(1)
}
