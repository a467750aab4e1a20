package service

import (
	"context"
	"io"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, userID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
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

// MockMemoryRepo
type MockMemoryRepo struct {
	mock.Mock
}

func (m *MockMemoryRepo) Create(ctx context.Context, memory *domain.Memory) error {
	args := m.Called(ctx, memory)
	return args.Error(0)
}
func (m *MockMemoryRepo) GetByID(ctx context.Context, id string) (*domain.Memory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Memory), args.Error(1)
}
func (m *MockMemoryRepo) ListByFamily(ctx context.Context, familyID string, favoritesOnly bool) ([]domain.Memory, error) {
	args := m.Called(ctx, familyID, favoritesOnly)
	return args.Get(0).([]domain.Memory), args.Error(1)
}
func (m *MockMemoryRepo) SetFavorite(ctx context.Context, id string, favorite bool) error {
	args := m.Called(ctx, id, favorite)
	return args.Error(0)
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

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
