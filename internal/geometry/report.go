package geometry

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Severity indicates whether a finding blocks acceptance
type Severity string

// Severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation result
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
	Value    any      `json:"value,omitempty" yaml:"value,omitempty"`
}

// String renders the finding as "path: message"
func (f Finding) String() string {
	if f.Path == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// Report collects findings. Errors make it invalid; warnings do not.
type Report struct {
	Valid    bool      `json:"valid" yaml:"valid"`
	Errors   []Finding `json:"errors" yaml:"errors"`
	Warnings []Finding `json:"warnings" yaml:"warnings"`
	Summary  string    `json:"summary" yaml:"summary"`
}

// NewReport creates an empty valid report
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Finding{},
		Warnings: []Finding{},
	}
	r.updateSummary()
	return r
}

// AddError records a blocking finding and marks the report invalid
func (r *Report) AddError(path, format string, args ...any) {
	r.Errors = append(r.Errors, Finding{
		Severity: SeverityError,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
	r.Valid = false
	r.updateSummary()
}

// AddWarning records a non-blocking finding
func (r *Report) AddWarning(path, format string, args ...any) {
	r.Warnings = append(r.Warnings, Finding{
		Severity: SeverityWarning,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
	r.updateSummary()
}

// Merge folds another report into this one
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Err converts a failing report to an InvalidArgument error carrying the findings
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}

	messages := make([]string, len(r.Errors))
	for i, f := range r.Errors {
		messages[i] = f.String()
	}

	return errors.InvalidArgumentf("invalid room geometry: %s", strings.Join(messages, "; ")).
		WithMeta("errors", messages).
		WithMeta("warning_count", len(r.Warnings))
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings", len(r.Errors), len(r.Warnings))
}
