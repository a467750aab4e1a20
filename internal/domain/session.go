package domain

import "time"

// Session is a persisted refresh grant. Logout deletes the row, so a revoked
// refresh token cannot mint new access tokens even before it expires.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresOn time.Time `json:"expires_on"`
	CreatedOn string    `json:"created_on"`
}
