package inventory

import (
	"strings"
)

// CountMode is the closed set of counting modes a pass can use
type CountMode string

const (
	CountModeBulk       CountMode = "en vrac"
	CountModeByArticle  CountMode = "par article"
	CountModeStockImage CountMode = "image de stock"
)

// AllCountModes returns every supported count mode
func AllCountModes() []CountMode {
	return []CountMode{CountModeBulk, CountModeByArticle, CountModeStockImage}
}

// ParseCountMode normalizes a raw mode string (trimmed, case-folded, inner
// whitespace collapsed). "image stock" is accepted as an alias of
// "image de stock".
func ParseCountMode(raw string) (CountMode, error) {
	normalized := NormalizeCountMode(raw)
	switch normalized {
	case string(CountModeBulk):
		return CountModeBulk, nil
	case string(CountModeByArticle):
		return CountModeByArticle, nil
	case string(CountModeStockImage), "image stock":
		return CountModeStockImage, nil
	}
	return "", unsupportedCountMode(raw)
}

// NormalizeCountMode lower-cases and collapses whitespace without resolving aliases
func NormalizeCountMode(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// IsValid checks if the mode is one of the supported modes
func (m CountMode) IsValid() bool {
	switch m {
	case CountModeBulk, CountModeByArticle, CountModeStockImage:
		return true
	}
	return false
}

// String returns the string representation of CountMode
func (m CountMode) String() string {
	return string(m)
}

// IsManual reports whether the mode is captured by operators rather than
// seeded from a snapshot
func (m CountMode) IsManual() bool {
	return m == CountModeBulk || m == CountModeByArticle
}
