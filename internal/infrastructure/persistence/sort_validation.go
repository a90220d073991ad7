package persistence

import (
	"slices"
	"strings"
)

// sortSpec whitelists the columns a listing may be ordered by. Anything
// outside the whitelist falls back to the default column and direction.
type sortSpec struct {
	columns    []string
	defaultCol string
	defaultDir string
	// tieBreak is appended so that pages are stable
	tieBreak string
}

var inventorySort = sortSpec{
	columns:    []string{"id", "created_at", "updated_at", "reference", "label", "date", "status", "inventory_type"},
	defaultCol: "created_at",
	defaultDir: "DESC",
	tieBreak:   "id DESC",
}

var ecartSort = sortSpec{
	columns:    []string{"id", "created_at", "updated_at", "reference", "location_id", "total_sequences", "resolved"},
	defaultCol: "id",
	defaultDir: "ASC",
}

// column returns field when whitelisted, otherwise the default column
func (s sortSpec) column(field string) string {
	field = strings.TrimSpace(field)
	if slices.Contains(s.columns, field) {
		return field
	}
	return s.defaultCol
}

// direction normalizes dir to ASC or DESC. Without an explicit column the
// default direction applies.
func (s sortSpec) direction(field, dir string) string {
	if strings.TrimSpace(field) == "" {
		return s.defaultDir
	}
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	}
	return s.defaultDir
}

// orderBy builds a safe ORDER BY clause
func (s sortSpec) orderBy(field, dir string) string {
	clause := s.column(field) + " " + s.direction(field, dir)
	if s.tieBreak != "" && !strings.HasPrefix(s.tieBreak, s.column(field)+" ") {
		clause += ", " + s.tieBreak
	}
	return clause
}
