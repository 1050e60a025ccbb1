// ABOUTME: Race-safe optimistic mapping updates with guarded rollback
// ABOUTME: Per-role Saving guard; failed saves revert only when not superseded

package updater

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/modelmap/internal/eventbus"
	"github.com/mauromedda/modelmap/internal/log"
	"github.com/mauromedda/modelmap/internal/mapping"
	"github.com/mauromedda/modelmap/internal/reasoning"
)

// PersistFunc writes the full mapping collection to the backing store.
type PersistFunc func(ctx context.Context, mappings []mapping.ModelMapping) error

// ModelSetFunc supplies the current reasoning-capable model set. Called on
// every update so externally refreshed sets are never stale.
type ModelSetFunc func() reasoning.ModelSet

// Config wires an Updater's collaborators.
type Config struct {
	Store    *mapping.Store
	Persist  PersistFunc
	ModelSet ModelSetFunc
	Codec    reasoning.Codec
	Slots    []mapping.RoleSlot
	Bus      *eventbus.Bus // optional
}

// Updater orchestrates codec, store and persistence into the per-role
// update protocol: optimistic apply, single in-flight save per role,
// conditional rollback on failure. The mutex covers state transitions
// only; the persist call itself runs unlocked so saves for different
// roles may overlap.
type Updater struct {
	mu     sync.Mutex
	saving map[string]bool

	store    *mapping.Store
	persist  PersistFunc
	modelSet ModelSetFunc
	codec    reasoning.Codec
	slots    []mapping.RoleSlot
	bus      *eventbus.Bus

	group errgroup.Group
}

// New creates an Updater.
func New(cfg Config) *Updater {
	return &Updater{
		saving:   make(map[string]bool),
		store:    cfg.Store,
		persist:  cfg.Persist,
		modelSet: cfg.ModelSet,
		codec:    cfg.Codec,
		slots:    cfg.Slots,
		bus:      cfg.Bus,
	}
}

// op is an in-flight update for one role, captured at begin time for the
// rollback comparison.
type op struct {
	roleID      string
	sourceModel string
	original    string
	next        string
	kind        eventbus.Kind
}

// UpdateLevel re-encodes the role's target alias with the given level and
// persists the collection. Returns StatusConflictSkip when a save for the
// role is already in flight, StatusNoChange when encoding is a no-op (for
// example on a non-reasoning-capable target), and ErrNotFound when the
// role has no mapping.
func (u *Updater) UpdateLevel(ctx context.Context, roleID string, level reasoning.Level) (Status, error) {
	slot, cur, status, err := u.resolve(roleID)
	if err != nil || status == StatusConflictSkip {
		return status, err
	}
	next := u.codec.Encode(cur.Target, level, u.modelSet())
	return u.commitTarget(ctx, slot, cur, next, eventbus.KindLevelChanged)
}

// SetTarget replaces the role's target alias outright, using the same
// guarded protocol as UpdateLevel.
func (u *Updater) SetTarget(ctx context.Context, roleID, target string) (Status, error) {
	slot, cur, status, err := u.resolve(roleID)
	if err != nil || status == StatusConflictSkip {
		return status, err
	}
	return u.commitTarget(ctx, slot, cur, target, eventbus.KindTargetChanged)
}

// UpdateLevelAsync starts UpdateLevel without waiting for the persist call.
// The Saving guard is taken synchronously, so a subsequent call for the
// same role observes the conflict immediately. Terminal statuses
// (conflict, no-change, not-found) are returned synchronously;
// StatusSaved means the save is in flight and its outcome is reported by
// Close.
func (u *Updater) UpdateLevelAsync(ctx context.Context, roleID string, level reasoning.Level) (Status, error) {
	slot, cur, status, err := u.resolve(roleID)
	if err != nil || status == StatusConflictSkip {
		return status, err
	}
	next := u.codec.Encode(cur.Target, level, u.modelSet())
	o, status := u.begin(slot, cur, next, eventbus.KindLevelChanged)
	if status != StatusSaved {
		return status, nil
	}
	u.group.Go(func() error {
		_, err := u.finish(ctx, o)
		return err
	})
	return StatusSaved, nil
}

// Close waits for in-flight async saves and returns the first failure.
func (u *Updater) Close() error {
	return u.group.Wait()
}

// acquire takes the Saving guard for a key, reporting false when a save
// is already in flight. Level updates go through begin/finish instead;
// this is for the operations that persist inline.
func (u *Updater) acquire(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.saving[key] {
		return false
	}
	u.saving[key] = true
	return true
}

func (u *Updater) release(key string) {
	u.mu.Lock()
	delete(u.saving, key)
	u.mu.Unlock()
}

// resolve maps a role ID to its slot and current mapping, honoring the
// per-role Saving guard.
func (u *Updater) resolve(roleID string) (mapping.RoleSlot, mapping.ModelMapping, Status, error) {
	slot, ok := mapping.FindRole(u.slots, roleID)
	if !ok {
		return slot, mapping.ModelMapping{}, StatusFailed, fmt.Errorf("%w: unknown role %q", ErrNotFound, roleID)
	}

	u.mu.Lock()
	inFlight := u.saving[roleID]
	u.mu.Unlock()
	if inFlight {
		log.Debug("updater: role %s already saving, skipping", roleID)
		return slot, mapping.ModelMapping{}, StatusConflictSkip, nil
	}

	cur, ok := u.store.Get(slot.SourceModel)
	if !ok {
		return slot, mapping.ModelMapping{}, StatusFailed, fmt.Errorf("%w: %q", ErrNotFound, roleID)
	}
	return slot, cur, StatusSaved, nil
}

// commitTarget runs the synchronous variant of the protocol.
func (u *Updater) commitTarget(ctx context.Context, slot mapping.RoleSlot, cur mapping.ModelMapping, next string, kind eventbus.Kind) (Status, error) {
	o, status := u.begin(slot, cur, next, kind)
	if status != StatusSaved {
		return status, nil
	}
	return u.finish(ctx, o)
}

// begin applies the change optimistically and takes the Saving guard.
// StatusNoChange means nothing was applied and no persist is needed;
// StatusConflictSkip means a concurrent begin won the guard between
// resolve and here. StatusSaved means the op is pending.
func (u *Updater) begin(slot mapping.RoleSlot, cur mapping.ModelMapping, next string, kind eventbus.Kind) (op, Status) {
	if next == cur.Target {
		return op{}, StatusNoChange
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.saving[slot.ID] {
		return op{}, StatusConflictSkip
	}

	o := op{
		roleID:      slot.ID,
		sourceModel: slot.SourceModel,
		original:    cur.Target,
		next:        next,
		kind:        kind,
	}
	updated := cur.Clone()
	updated.Target = next
	u.store.Upsert(updated)
	u.saving[slot.ID] = true
	return o, StatusSaved
}

// finish persists the full collection and resolves the op. The snapshot is
// taken here, after the optimistic apply, so edits made to other roles in
// the meantime ride along instead of being stomped.
func (u *Updater) finish(ctx context.Context, o op) (Status, error) {
	snapshot := u.store.All()
	err := u.persist(ctx, snapshot)

	u.mu.Lock()
	delete(u.saving, o.roleID)
	if err == nil {
		u.mu.Unlock()
		u.bus.Publish(eventbus.Event{Kind: o.kind, SourceModel: o.sourceModel, Target: o.next})
		return StatusSaved, nil
	}

	// Roll back only if nothing else touched this role since the
	// optimistic apply; a newer value must not be clobbered.
	rolledBack := false
	if now, ok := u.store.Get(o.sourceModel); ok && now.Target == o.next {
		now.Target = o.original
		u.store.Upsert(now)
		rolledBack = true
	}
	u.mu.Unlock()

	log.Warn("updater: save failed for role %s (rolled back=%v): %v", o.roleID, rolledBack, err)
	return StatusFailed, &PersistError{RoleID: o.roleID, RolledBack: rolledBack, Err: err}
}
