// ABOUTME: Result statuses and error taxonomy for mapping updates
// ABOUTME: ConflictSkip is a status, not an error; persist failures carry rollback info

package updater

import (
	"errors"
	"fmt"
)

// Status reports the outcome of an update request.
type Status int

const (
	// StatusSaved means the change was applied and persisted.
	StatusSaved Status = iota
	// StatusNoChange means encoding produced the current alias; nothing
	// was persisted.
	StatusNoChange
	// StatusConflictSkip means an update for this role was already in
	// flight; the request was silently dropped.
	StatusConflictSkip
	// StatusFailed means the persist call failed; the in-memory state was
	// rolled back when safe (see PersistError.RolledBack).
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusNoChange:
		return "no_change"
	case StatusConflictSkip:
		return "conflict_skip"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrNotFound is returned when an update references a role with no live
// mapping. Callers should not invoke updates on inactive roles; this is a
// precondition bug, not a user-recoverable state.
var ErrNotFound = errors.New("no mapping for role")

// ErrNotCustom is returned when a custom-mapping operation targets a
// source model that belongs to the role-slot catalog.
var ErrNotCustom = errors.New("source model belongs to the role catalog")

// ErrSaveInFlight is returned by the enable/disable and custom-mapping
// operations when a save for the same key is still in flight. Unlike the
// level updates these have no silent-skip semantics, so the conflict is
// surfaced as an error.
var ErrSaveInFlight = errors.New("save already in flight")

// PersistError wraps a failed persist call. RolledBack reports whether the
// optimistic in-memory change was reverted: it is false when a later edit
// superseded this one before the failure was observed.
type PersistError struct {
	RoleID     string
	RolledBack bool
	Err        error
}

func (e *PersistError) Error() string {
	if e.RolledBack {
		return fmt.Sprintf("persisting mappings for role %s (rolled back): %v", e.RoleID, e.Err)
	}
	return fmt.Sprintf("persisting mappings for role %s: %v", e.RoleID, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
