package utils

import "time"

const DateLayout = "2006-01-02"

// Today returns the current date in ISO form. All date fields are stored as
// ISO strings, so range filters and overdue checks compare lexicographically.
func Today() string {
	return time.Now().Format(DateLayout)
}
