// ABOUTME: Default target suggestions when activating a role slot
// ABOUTME: Uniform level across existing GPT mappings wins over tier defaults

package updater

import "github.com/mauromedda/modelmap/internal/reasoning"

// tierDefaults maps role tiers to the reasoning level their fallback
// target gets when no uniform level is configured yet. Heavier tiers get
// more effort.
var tierDefaults = map[string]reasoning.Level{
	"opus":   reasoning.LevelHigh,
	"sonnet": reasoning.LevelMedium,
	"haiku":  reasoning.LevelMinimal,
}

const defaultBase = "gpt-5"

// SuggestTarget proposes a target alias for a newly activated role: the
// default base model, encoded with the uniform level of the existing
// enabled GPT mappings when they agree, or the tier default otherwise.
func (u *Updater) SuggestTarget(roleID string) string {
	set := u.modelSet()
	level, hasUniform := u.uniformLevel(set)
	if !hasUniform {
		level = tierDefaults[roleID] // zero value LevelNone for unknown tiers
	}
	return u.codec.Encode(defaultBase, level, set)
}

// uniformLevel reports the shared level of enabled GPT-capable mappings,
// and whether at least one such mapping exists with full agreement.
func (u *Updater) uniformLevel(set reasoning.ModelSet) (reasoning.Level, bool) {
	entries := u.store.All()
	level, ok := reasoning.UniformLevel(entries, u.codec, set)
	if !ok {
		return reasoning.LevelNone, false
	}
	for _, m := range entries {
		if !m.IsEnabled() {
			continue
		}
		d := u.codec.Decode(m.Target, set)
		if set.Contains(u.codec.Unprefix(d.Base)) {
			return level, true
		}
	}
	return reasoning.LevelNone, false
}
