package models

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// ClassLabels is the fixed set of grade levels content is scoped by.
var ClassLabels = []string{
	"Class 5",
	"Class 6",
	"Class 7",
	"Class 8",
	"Class 9",
	"Class 10",
}

// IsClassLabel reports whether label is one of the six known grade levels.
func IsClassLabel(label string) bool {
	for _, l := range ClassLabels {
		if l == label {
			return true
		}
	}
	return false
}
