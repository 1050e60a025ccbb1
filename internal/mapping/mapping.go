// ABOUTME: Model mapping records redirecting agent model roles to targets
// ABOUTME: sourceModel is the collection key; enabled-absent means enabled

package mapping

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateSource is returned when a creation would reuse an
	// existing sourceModel key.
	ErrDuplicateSource = errors.New("duplicate source model")
	// ErrMissingField is returned when a mapping lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

// ModelMapping redirects requests for one source model to a target alias.
// Target may carry an encoded reasoning suffix; this package treats it as
// opaque. Enabled is a tri-state pointer so an absent field round-trips:
// readers must treat nil as enabled, and "no mapping at all" as disabled.
type ModelMapping struct {
	ID          string `json:"id,omitempty"`
	SourceModel string `json:"sourceModel"`
	Target      string `json:"targetAlias"`
	Enabled     *bool  `json:"enabled,omitempty"`
	Fork        bool   `json:"fork,omitempty"`
}

// IsEnabled reports whether the mapping is live. Only an explicit
// enabled=false disables an existing entry.
func (m ModelMapping) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// Validate checks required fields.
func (m ModelMapping) Validate() error {
	if m.SourceModel == "" {
		return fmt.Errorf("%w: sourceModel", ErrMissingField)
	}
	if m.Target == "" {
		return fmt.Errorf("%w: targetAlias", ErrMissingField)
	}
	return nil
}

// NewCustom builds a user-defined mapping with a fresh ID. The source key
// is unrestricted; uniqueness is enforced by the store on insert.
func NewCustom(sourceModel, target string) ModelMapping {
	enabled := true
	return ModelMapping{
		ID:          uuid.NewString(),
		SourceModel: sourceModel,
		Target:      target,
		Enabled:     &enabled,
	}
}

// Clone returns a deep copy (the Enabled pointer is duplicated so later
// mutation of one copy cannot leak into the other).
func (m ModelMapping) Clone() ModelMapping {
	out := m
	if m.Enabled != nil {
		v := *m.Enabled
		out.Enabled = &v
	}
	return out
}

// CloneAll deep-copies a collection.
func CloneAll(mappings []ModelMapping) []ModelMapping {
	out := make([]ModelMapping, len(mappings))
	for i, m := range mappings {
		out[i] = m.Clone()
	}
	return out
}
