// ABOUTME: Slot enable/disable and custom-mapping operations with persist
// ABOUTME: Validation happens before any mutation; failed saves restore state

package updater

import (
	"context"
	"fmt"

	"github.com/mauromedda/modelmap/internal/eventbus"
	"github.com/mauromedda/modelmap/internal/mapping"
)

// EnableRole creates (or re-enables) the mapping for a role slot. An empty
// target picks a suggested default: the tier's base model encoded with the
// collection's uniform level when one exists, the tier default level
// otherwise.
func (u *Updater) EnableRole(ctx context.Context, roleID, target string) error {
	slot, ok := mapping.FindRole(u.slots, roleID)
	if !ok {
		return fmt.Errorf("%w: unknown role %q", ErrNotFound, roleID)
	}

	if target == "" {
		target = u.SuggestTarget(roleID)
	}

	if !u.acquire(slot.ID) {
		return fmt.Errorf("%w: role %q", ErrSaveInFlight, roleID)
	}
	defer u.release(slot.ID)

	prev, had := u.store.Get(slot.SourceModel)

	enabled := true
	next := mapping.ModelMapping{
		SourceModel: slot.SourceModel,
		Target:      target,
		Enabled:     &enabled,
	}
	if had {
		next.ID = prev.ID
		next.Fork = prev.Fork
	}
	u.store.Upsert(next)

	if err := u.persist(ctx, u.store.All()); err != nil {
		if had {
			u.store.Upsert(prev)
		} else {
			u.store.Remove(slot.SourceModel)
		}
		return &PersistError{RoleID: roleID, RolledBack: true, Err: err}
	}

	u.bus.Publish(eventbus.Event{Kind: eventbus.KindEnabled, SourceModel: slot.SourceModel, Target: target})
	return nil
}

// DisableRole removes the role's mapping entirely: "no mapping" is the
// canonical disabled representation.
func (u *Updater) DisableRole(ctx context.Context, roleID string) error {
	slot, ok := mapping.FindRole(u.slots, roleID)
	if !ok {
		return fmt.Errorf("%w: unknown role %q", ErrNotFound, roleID)
	}

	if !u.acquire(slot.ID) {
		return fmt.Errorf("%w: role %q", ErrSaveInFlight, roleID)
	}
	defer u.release(slot.ID)

	prev, had := u.store.Get(slot.SourceModel)
	if !had {
		return nil // already disabled
	}
	u.store.Remove(slot.SourceModel)

	if err := u.persist(ctx, u.store.All()); err != nil {
		u.store.Upsert(prev)
		return &PersistError{RoleID: roleID, RolledBack: true, Err: err}
	}

	u.bus.Publish(eventbus.Event{Kind: eventbus.KindDisabled, SourceModel: slot.SourceModel})
	return nil
}

// AddCustom creates a user-defined mapping with an unrestricted source
// key. Duplicate keys and missing fields are rejected before any state
// change.
func (u *Updater) AddCustom(ctx context.Context, sourceModel, target string) (mapping.ModelMapping, error) {
	if !u.acquire(sourceModel) {
		return mapping.ModelMapping{}, fmt.Errorf("%w: %s", ErrSaveInFlight, sourceModel)
	}
	defer u.release(sourceModel)

	m := mapping.NewCustom(sourceModel, target)
	if err := u.store.Add(m); err != nil {
		return mapping.ModelMapping{}, err
	}

	if err := u.persist(ctx, u.store.All()); err != nil {
		u.store.Remove(sourceModel)
		return mapping.ModelMapping{}, &PersistError{RoleID: sourceModel, RolledBack: true, Err: err}
	}

	u.bus.Publish(eventbus.Event{Kind: eventbus.KindCustomAdded, SourceModel: sourceModel, Target: target})
	return m, nil
}

// RemoveCustom deletes a custom mapping. Slot-bound sources are rejected;
// those are disabled through DisableRole.
func (u *Updater) RemoveCustom(ctx context.Context, sourceModel string) error {
	if mapping.IsSlotSource(u.slots, sourceModel) {
		return fmt.Errorf("%w: %s", ErrNotCustom, sourceModel)
	}

	if !u.acquire(sourceModel) {
		return fmt.Errorf("%w: %s", ErrSaveInFlight, sourceModel)
	}
	defer u.release(sourceModel)

	prev, had := u.store.Get(sourceModel)
	if !had {
		return fmt.Errorf("%w: %q", ErrNotFound, sourceModel)
	}
	u.store.Remove(sourceModel)

	if err := u.persist(ctx, u.store.All()); err != nil {
		u.store.Upsert(prev)
		return &PersistError{RoleID: sourceModel, RolledBack: true, Err: err}
	}

	u.bus.Publish(eventbus.Event{Kind: eventbus.KindCustomRemoved, SourceModel: sourceModel})
	return nil
}
