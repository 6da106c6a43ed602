package models

import (
	"strings"
	"time"
)

// MaterialType distinguishes how the client renders a resource link.
type MaterialType string

const (
	MaterialTypePDF   MaterialType = "pdf"
	MaterialTypeDrive MaterialType = "drive"
)

const driveHost = "drive.google.com"

// ClassifyMaterialType derives the material type from its resource URL.
// Anything hosted on Google Drive is "drive", everything else is "pdf".
func ClassifyMaterialType(url string) MaterialType {
	if strings.Contains(url, driveHost) {
		return MaterialTypeDrive
	}
	return MaterialTypePDF
}

// Material is a study resource published to one class label. Immutable once
// created; corrections are delete and recreate.
type Material struct {
	ID          string       `db:"id" json:"id"`
	Class       string       `db:"class" json:"class"`
	Title       string       `db:"title" json:"title"`
	ResourceURL string       `db:"resource_url" json:"resource_url"`
	Type        MaterialType `db:"type" json:"type"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}
