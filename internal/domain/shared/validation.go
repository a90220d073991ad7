package shared

import (
	"strings"
)

// ValidationSeverity represents the severity of a validation issue
type ValidationSeverity string

const (
	ValidationSeverityError ValidationSeverity = "error"
	ValidationSeverityInfo  ValidationSeverity = "info"
)

// Violation is one failed rule. Order is the counting pass the rule was
// evaluated against, or 0 when the rule is not pass-specific.
type Violation struct {
	Rule     string             `json:"rule"`
	Order    int                `json:"order,omitempty"`
	Field    string             `json:"field,omitempty"`
	Message  string             `json:"message"`
	Severity ValidationSeverity `json:"severity"`
}

// ValidationResult collects every violation found by a validator.
// Validators never stop at the first failure.
type ValidationResult struct {
	Errors []Violation
	Infos  []Violation
}

// AddError records a blocking violation
func (r *ValidationResult) AddError(rule string, order int, field, message string) {
	r.Errors = append(r.Errors, Violation{
		Rule:     rule,
		Order:    order,
		Field:    field,
		Message:  message,
		Severity: ValidationSeverityError,
	})
}

// AddInfo records a non-blocking advisory
func (r *ValidationResult) AddInfo(rule, message string) {
	r.Infos = append(r.Infos, Violation{
		Rule:     rule,
		Message:  message,
		Severity: ValidationSeverityInfo,
	})
}

// Merge appends another result's violations
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Infos = append(r.Infos, other.Infos...)
}

// IsValid reports whether no blocking violation was recorded
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Messages returns the messages of the blocking violations in order
func (r *ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, v := range r.Errors {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// InfoMessages returns the advisory messages in order
func (r *ValidationResult) InfoMessages() []string {
	msgs := make([]string, 0, len(r.Infos))
	for _, v := range r.Infos {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Err returns nil when valid, otherwise a ValidationError with the given code
func (r *ValidationResult) Err(code string) error {
	if r.IsValid() {
		return nil
	}
	return NewValidationError(code, *r)
}

// ValidationError is a multi-violation domain error
type ValidationError struct {
	Code       string
	Violations []Violation
	Infos      []Violation
}

// NewValidationError creates a ValidationError from a result
func NewValidationError(code string, result ValidationResult) *ValidationError {
	return &ValidationError{
		Code:       code,
		Violations: result.Errors,
		Infos:      result.Infos,
	}
}

// Error joins every violation message with " | "
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, " | ")
}

// Is matches a DomainError or ValidationError sentinel with the same code
func (e *ValidationError) Is(target error) bool {
	switch t := target.(type) {
	case *DomainError:
		return e.Code == t.Code
	case *ValidationError:
		return e.Code == t.Code
	}
	return false
}

// HasRule reports whether a violation with the given rule id is present
func (e *ValidationError) HasRule(rule string) bool {
	for _, v := range e.Violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}
