package models

import "time"

// Weekday ordering used when sorting schedule entries.
var scheduleDayOrder = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// ScheduleDayRank maps a weekday name to its sort position; unknown days
// sort last.
func ScheduleDayRank(day string) int {
	if rank, ok := scheduleDayOrder[day]; ok {
		return rank
	}
	return len(scheduleDayOrder) + 1
}

// ScheduleEntry is one weekly slot in a class timetable: a subject taught on
// a given day at a given time. Entries are individually inserted and deleted
// by admins.
type ScheduleEntry struct {
	ID        string    `db:"id" json:"id"`
	Class     string    `db:"class" json:"class"`
	Day       string    `db:"day" json:"day"`
	Subject   string    `db:"subject" json:"subject"`
	TimeSlot  string    `db:"time_slot" json:"time_slot"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
