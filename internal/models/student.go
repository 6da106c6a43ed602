package models

import "time"

// ApprovalStatus is a student's place in the admin approval workflow.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// IsValid reports whether s is a known approval status.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Student represents a learner registered with the institute. Phone is
// unique across all students and, together with name and class, serves as
// the login identity. Status starts pending and is only ever changed by an
// admin.
type Student struct {
	ID        string         `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Phone     string         `db:"phone" json:"phone"`
	Class     string         `db:"class" json:"class"`
	Status    ApprovalStatus `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// StudentFilter captures the admin listing filters.
type StudentFilter struct {
	Status   ApprovalStatus
	Class    string
	Search   string
	Page     int
	PageSize int
}
