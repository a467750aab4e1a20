package domain

type Family struct {
	ID        string `json:"id"`
	Name      string `json:"family_name"`
	CreatedOn string `json:"created_on"`
}

// Membership pairs a user with a family. The pair is unique; a user may
// belong to any number of families.
type Membership struct {
	UserID   string `json:"user_id"`
	FamilyID string `json:"family_id"`
	JoinedOn string `json:"joined_on"`
}
