package models

import "time"

// Routine is a recurring weekly commitment, not a dated event.
// WeekDay is 0..6 with 0 meaning Sunday.
type Routine struct {
	ID          string
	UserID      string
	Title       string
	Description string
	WeekDay     int
	Time        string
	Category    string
	CreatedAt   time.Time
}
