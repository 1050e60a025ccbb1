// ABOUTME: Static catalog of logical model roles addressed by the CLI agent
// ABOUTME: A slot is active iff an enabled mapping exists for its source model

package mapping

// RoleSlot is one entry in the fixed, ordered catalog of logical roles.
// The external agent addresses a role by sending SourceModel; an enabled
// mapping for that key redirects it.
type RoleSlot struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"displayName"`
	SourceModel string `yaml:"sourceModel"`
	SourceLabel string `yaml:"sourceLabel"`
}

// DefaultRoleSlots returns the built-in role catalog for Claude Code style
// agents: the three model tiers the agent requests by name.
func DefaultRoleSlots() []RoleSlot {
	return []RoleSlot{
		{ID: "opus", DisplayName: "Opus", SourceModel: "claude-opus-4-6", SourceLabel: "claude-opus"},
		{ID: "sonnet", DisplayName: "Sonnet", SourceModel: "claude-sonnet-4-5", SourceLabel: "claude-sonnet"},
		{ID: "haiku", DisplayName: "Haiku", SourceModel: "claude-haiku-4-5", SourceLabel: "claude-haiku"},
	}
}

// FindRole looks a slot up by ID.
func FindRole(slots []RoleSlot, id string) (RoleSlot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return RoleSlot{}, false
}

// SlotSources returns the source models of all slots, in catalog order.
func SlotSources(slots []RoleSlot) []string {
	sources := make([]string, len(slots))
	for i, s := range slots {
		sources[i] = s.SourceModel
	}
	return sources
}

// IsSlotSource reports whether a source model belongs to the slot catalog.
func IsSlotSource(slots []RoleSlot, sourceModel string) bool {
	for _, s := range slots {
		if s.SourceModel == sourceModel {
			return true
		}
	}
	return false
}
