package model

import "time"

// Secret categories form a closed set; anything else is rejected at validation.
const (
	CategoryWebsite = "Website"
	CategoryEmail   = "Email"
	CategoryBanking = "Banking"
	CategoryWiFi    = "WiFi"
	CategoryOther   = "Other"
)

// ValidCategory reports whether s is one of the known secret categories.
func ValidCategory(s string) bool {
	switch s {
	case CategoryWebsite, CategoryEmail, CategoryBanking, CategoryWiFi, CategoryOther:
		return true
	}
	return false
}

// Secret represents a stored credential entry in the database.
// Password holds the ciphertext when loaded from the store and the
// plaintext in transit through the service layer.
type Secret struct {
	ID        int64
	UserID    int64
	Title     string
	Username  string
	Password  string
	Website   string
	Notes     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SecretRequest represents the mutable fields of a secret as sent by the client,
// used for both create and update.
type SecretRequest struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	Website  string `json:"website"`
	Notes    string `json:"notes"`
	Category string `json:"category"`
}

// SecretResponse represents a secret as returned to its owner, with the
// secret value decrypted.
type SecretResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username,omitempty"`
	Password  string    `json:"password"`
	Website   string    `json:"website,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteResponse confirms a completed delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
