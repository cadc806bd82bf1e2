package mmodel

// Pagination encapsulates a paginated list response payload.
type Pagination struct {
	Items any `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Filter is the common set of query-string parameters list endpoints
// accept.
type Filter struct {
	Page      int
	Limit     int
	OwnerKind string
}

// SafeLimit clamps Limit into (0, max].
func (f Filter) SafeLimit(max int) int {
	if f.Limit <= 0 {
		return 10
	}

	if f.Limit > max {
		return max
	}

	return f.Limit
}

// SafePage clamps Page to at least 1.
func (f Filter) SafePage() int {
	if f.Page <= 0 {
		return 1
	}

	return f.Page
}
