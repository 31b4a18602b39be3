package models

import "time"

// Note is a free-form study note. An absent (zero) id on save means a new
// record; a matching id means the existing record is updated and updated_at
// refreshed.
type Note struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
