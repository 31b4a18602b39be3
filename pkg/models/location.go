package models

import "time"

// SavedLocation is a named map viewpoint captured from a user-confirmed map
// click. Coordinates are stored rounded to four decimal places.
type SavedLocation struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	Zoom      float64   `json:"zoom" db:"zoom"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
