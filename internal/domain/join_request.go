package domain

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "pending"
	JoinRequestStatusAccepted JoinRequestStatus = "accepted"
)

// JoinRequest is a user's request to join a family by its invite id.
// Rejection deletes the row outright; no rejected status is stored.
type JoinRequest struct {
	ID        string            `json:"request_id"`
	UserID    string            `json:"user_id"`
	FamilyID  string            `json:"family_id"`
	Status    JoinRequestStatus `json:"request_status"`
	CreatedOn string            `json:"created_at"`
}

// PendingJoinRequest is a pending request joined to the requester's display
// username for the admin review screen.
type PendingJoinRequest struct {
	JoinRequest
	Username string `json:"username"`
}
