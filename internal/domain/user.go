package domain

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}

// Profile carries the user-facing identity. A profile row is created empty at
// signup; the username is set later through a profile edit.
type Profile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	CreatedOn string `json:"created_on"`
}

// UnknownUsername is the display fallback when a member has no profile row or
// has not picked a username yet.
const UnknownUsername = "Unknown"

// Member is the resolved view of a membership row: the user id joined to the
// display username in a single query.
type Member struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	JoinedOn string `json:"joined_on"`
}
