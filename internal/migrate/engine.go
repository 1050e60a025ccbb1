// ABOUTME: One-shot forward migration of mapping keys across model renames
// ABOUTME: Idempotent; never creates a duplicate sourceModel

package migrate

import (
	"github.com/mauromedda/modelmap/internal/log"
	"github.com/mauromedda/modelmap/internal/mapping"
)

// Rule rewrites a stored mapping key From to its replacement To.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultRules covers upstream renames of the role source models, from
// dated identifiers to their canonical replacements.
func DefaultRules() []Rule {
	return []Rule{
		{From: "claude-opus-4-5-20251101", To: "claude-opus-4-6"},
		{From: "claude-sonnet-4-5-20250929", To: "claude-sonnet-4-5"},
		{From: "claude-haiku-4-5-20251001", To: "claude-haiku-4-5"},
	}
}

// Migrate rewrites mapping keys according to rules. A rule applies only
// when its target is an active source model AND no mapping already uses
// the target key, counting rewrites made earlier in the same pass; a
// skipped rule leaves the old
// entry in place untouched, even though nothing references its key anymore
// (matching the long-standing behavior of the stored-config migration —
// cleanup of such orphans is deliberately not attempted here).
//
// The input is never mutated. Running Migrate on its own output with the
// same rules reports migrated=false.
func Migrate(entries []mapping.ModelMapping, rules []Rule, activeSources []string) ([]mapping.ModelMapping, bool) {
	active := make(map[string]struct{}, len(activeSources))
	for _, s := range activeSources {
		active[s] = struct{}{}
	}
	taken := make(map[string]struct{}, len(entries))
	for _, m := range entries {
		taken[m.SourceModel] = struct{}{}
	}

	out := mapping.CloneAll(entries)
	migrated := false
	for i := range out {
		rule, ok := ruleFor(rules, out[i].SourceModel)
		if !ok {
			continue
		}
		if _, isActive := active[rule.To]; !isActive {
			continue
		}
		if _, exists := taken[rule.To]; exists {
			log.Debug("migrate: skipping %s -> %s (target already mapped)", rule.From, rule.To)
			continue
		}
		log.Info("migrate: rewriting mapping key %s -> %s", rule.From, rule.To)
		out[i].SourceModel = rule.To
		taken[rule.To] = struct{}{}
		migrated = true
	}
	return out, migrated
}

func ruleFor(rules []Rule, from string) (Rule, bool) {
	for _, r := range rules {
		if r.From == from {
			return r, true
		}
	}
	return Rule{}, false
}
