package domain

// Memory is a stored keepsake (photo or note attachment) shared with a
// family. The media bytes live in blob storage under StorageKey.
type Memory struct {
	ID          string `json:"memory_id"`
	FamilyID    string `json:"family_id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	StorageKey  string `json:"-"`
	ContentType string `json:"content_type"`
	Favorite    bool   `json:"favorite"`
	CreatedOn   string `json:"created_on"`
}
