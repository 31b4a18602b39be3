package models

import "time"

// CustomTerm is a user-authored terminology entry. Terms are created once and
// never mutated; the id is backend-assigned in remote mode and time-derived in
// local mode.
type CustomTerm struct {
	ID         int64     `json:"id" db:"id"`
	Term       string    `json:"term" db:"term"`
	Definition string    `json:"definition" db:"definition"`
	Framework  string    `json:"framework" db:"framework"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
