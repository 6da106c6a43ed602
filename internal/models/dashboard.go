package models

// ClassContent is everything visible to an approved student of one class:
// the most recent broadcast session, its live/not-live flag, study materials
// and the weekly timetable.
type ClassContent struct {
	LiveSession *LiveClass      `json:"live_session"`
	IsJoinable  bool            `json:"is_joinable"`
	Materials   []Material      `json:"materials"`
	Schedule    []ScheduleEntry `json:"schedule"`
}

// DashboardView is the student dashboard payload. Content is nil unless the
// student is approved; status is always present so polling clients can react
// to approval or rejection.
type DashboardView struct {
	Status  ApprovalStatus `json:"status"`
	Class   string         `json:"class"`
	Content *ClassContent  `json:"content,omitempty"`
}
