package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/logger"
	"souvenaria-backend/internal/repository"
)

type familyService struct {
	familyRepo repository.FamilyRepository
	reqRepo    repository.JoinRequestRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewFamilyService(
	familyRepo repository.FamilyRepository,
	reqRepo repository.JoinRequestRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) FamilyService {
	return &familyService{
		familyRepo: familyRepo,
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

func (s *familyService) CreateFamily(ctx context.Context, userID, name string) (*domain.Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: family name is required", domain.ErrValidation)
	}

	family := &domain.Family{Name: name}
	if err := s.familyRepo.CreateWithCreator(ctx, family, userID); err != nil {
		return nil, err
	}

	logger.Info("Family created", "family_id", family.ID, "creator_id", userID)
	return family, nil
}

func (s *familyService) GetFamily(ctx context.Context, userID, familyID string) (*domain.Family, error) {
	if err := s.requireMember(ctx, userID, familyID); err != nil {
		return nil, err
	}
	return s.familyRepo.GetByID(ctx, familyID)
}

func (s *familyService) ListMyFamilies(ctx context.Context, userID string) ([]domain.Family, error) {
	return s.familyRepo.ListByUser(ctx, userID)
}

// RequestJoin validates the free-form family id before creating the request:
// the family must exist, the requester must not already belong to it, and
// only one pending request per user/family pair is allowed.
func (s *familyService) RequestJoin(ctx context.Context, userID, familyID string) (*domain.JoinRequest, error) {
	familyID = strings.TrimSpace(familyID)
	if familyID == "" {
		return nil, fmt.Errorf("%w: family id is required", domain.ErrValidation)
	}

	if _, err := s.familyRepo.GetByID(ctx, familyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no family with id %s", domain.ErrNotFound, familyID)
		}
		return nil, err
	}

	isMember, err := s.familyRepo.IsMember(ctx, userID, familyID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, fmt.Errorf("%w: already a member of this family", domain.ErrConflict)
	}

	hasPending, err := s.reqRepo.HasPending(ctx, userID, familyID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, fmt.Errorf("%w: a join request is already pending", domain.ErrConflict)
	}

	req := &domain.JoinRequest{
		UserID:   userID,
		FamilyID: familyID,
		Status:   domain.JoinRequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	logger.Info("Join request created", "request_id", req.ID, "family_id", familyID)
	return req, nil
}

func (s *familyService) ListPendingRequests(ctx context.Context, callerID, familyID string) ([]domain.PendingJoinRequest, error) {
	if err := s.requireMember(ctx, callerID, familyID); err != nil {
		return nil, err
	}
	return s.reqRepo.ListPendingByFamily(ctx, familyID)
}

func (s *familyService) AcceptRequest(ctx context.Context, callerID, requestID, familyID string) (*domain.Membership, error) {
	if err := s.requireMember(ctx, callerID, familyID); err != nil {
		return nil, err
	}

	membership, err := s.reqRepo.Accept(ctx, requestID, familyID)
	if err != nil {
		return nil, err
	}

	logger.Info("Join request accepted", "request_id", requestID, "family_id", familyID, "user_id", membership.UserID)
	s.notifyDecision(ctx, membership.UserID, familyID, "accepted")
	return membership, nil
}

func (s *familyService) RejectRequest(ctx context.Context, callerID, requestID, familyID string) error {
	if err := s.requireMember(ctx, callerID, familyID); err != nil {
		return err
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.FamilyID != familyID {
		return fmt.Errorf("%w: request %s", domain.ErrNotFound, requestID)
	}

	if err := s.reqRepo.Delete(ctx, requestID, familyID); err != nil {
		return err
	}

	logger.Info("Join request rejected", "request_id", requestID, "family_id", familyID)
	s.notifyDecision(ctx, req.UserID, familyID, "rejected")
	return nil
}

func (s *familyService) ListMembers(ctx context.Context, callerID, familyID string) ([]domain.Member, error) {
	if err := s.requireMember(ctx, callerID, familyID); err != nil {
		return nil, err
	}
	return s.familyRepo.ListMembers(ctx, familyID)
}

func (s *familyService) RemoveMember(ctx context.Context, callerID, userID, familyID string) error {
	if err := s.requireMember(ctx, callerID, familyID); err != nil {
		return err
	}
	if err := s.familyRepo.RemoveMember(ctx, userID, familyID); err != nil {
		return err
	}
	logger.Info("Member removed", "family_id", familyID, "user_id", userID, "removed_by", callerID)
	return nil
}

// requireMember gates family-scoped operations. Non-members get not-found so
// family ids cannot be probed.
func (s *familyService) requireMember(ctx context.Context, userID, familyID string) error {
	isMember, err := s.familyRepo.IsMember(ctx, userID, familyID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("%w: family %s", domain.ErrNotFound, familyID)
	}
	return nil
}

// notifyDecision emails the requester about the outcome. Best effort only;
// the mutation has already committed.
func (s *familyService) notifyDecision(ctx context.Context, userID, familyID, decision string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Decision notice skipped, requester lookup failed", "user_id", userID, "error", err)
		return
	}
	familyName := familyID
	if family, err := s.familyRepo.GetByID(ctx, familyID); err == nil {
		familyName = family.Name
	}
	if err := s.emailSvc.SendJoinRequestDecision(ctx, user.Email, familyName, decision); err != nil {
		logger.Warn("Decision notice failed", "user_id", userID, "error", err)
	}
}
