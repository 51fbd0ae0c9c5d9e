package models

// Game is a row of the game table. Optional columns are nullable and
// serialize as null when unset.
type Game struct {
	ID          int64   `json:"id"`          // Primary key
	Title       string  `json:"title"`       // Required, CHECK (title <> '')
	Release     *string `json:"release"`     // Release year
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	URLSlug     string  `json:"urlSlug"` // Derived from Title at creation, UNIQUE
}

// NewGame is the create payload for a game. Scalar values of any JSON type
// are taken as text.
type NewGame struct {
	Title       LooseString  `json:"title"`
	Release     *LooseString `json:"release"`
	Genre       *LooseString `json:"genre"`
	Description *LooseString `json:"description"`
	ImageURL    *LooseString `json:"imageUrl"`
}
