package models

import "time"

// LiveClass is a time-bounded broadcast session for one class label. Rows
// are insert-only; overlapping sessions for the same class are allowed and
// resolved by most recent start.
type LiveClass struct {
	ID        string    `db:"id" json:"id"`
	Class     string    `db:"class" json:"class"`
	Title     string    `db:"title" json:"title"`
	MeetLink  string    `db:"meet_link" json:"meet_link"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
}

// IsActiveAt reports whether now falls inside the session window, bounds
// inclusive.
func (lc *LiveClass) IsActiveAt(now time.Time) bool {
	if lc == nil {
		return false
	}
	return !now.Before(lc.StartTime) && !now.After(lc.EndTime)
}
