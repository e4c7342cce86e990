package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
}

// GenerateResponse represents a generated password along with its strength grade.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}

// StrengthRequest represents a password strength analysis request.
type StrengthRequest struct {
	Password string `json:"password"`
}
