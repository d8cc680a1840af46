package models

// Item is the only resource the API manages.
type Item struct {
	// Assigned by the database (BIGSERIAL) and never changed afterwards
	ID int64 `json:"id" db:"id"`

	// 4 to 30 characters, checked before it reaches the store
	Name string `json:"name" db:"name"`

	// 10 to 100 characters
	Description string `json:"description" db:"description"`
}
