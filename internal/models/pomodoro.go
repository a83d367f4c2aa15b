package models

import "time"

// PomodoroDay is the per-user, per-calendar-day focus session counter.
// The (UserID, Date) pair is unique at the storage layer; CurrentStreak
// is the consecutive-day streak as of the last update of this row.
type PomodoroDay struct {
	ID            string
	UserID        string
	Date          string
	Count         int
	CurrentStreak int
	LastUpdated   time.Time
}
