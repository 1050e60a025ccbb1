// ABOUTME: Set of base models known to accept a reasoning-level suffix
// ABOUTME: Membership is tested on the unprefixed form; refreshable at runtime

package reasoning

// ModelSet holds base model identifiers (without vendor prefix) that
// support reasoning-level encoding. The set is supplied by the caller and
// may be refreshed over the process lifetime; codec calls always receive it
// explicitly rather than reading shared mutable state.
type ModelSet map[string]struct{}

// NewModelSet builds a set from base model names.
func NewModelSet(models ...string) ModelSet {
	s := make(ModelSet, len(models))
	for _, m := range models {
		s[m] = struct{}{}
	}
	return s
}

// Contains reports set membership for an already-unprefixed base model.
func (s ModelSet) Contains(base string) bool {
	_, ok := s[base]
	return ok
}

// Names returns the members in unspecified order.
func (s ModelSet) Names() []string {
	names := make([]string, 0, len(s))
	for m := range s {
		names = append(names, m)
	}
	return names
}

// DefaultGPTModels returns the GPT base models that accept a reasoning
// suffix. Kept in one place so the proxy config and the mapping engine
// agree on the list.
func DefaultGPTModels() ModelSet {
	return NewModelSet(
		"gpt-5",
		"gpt-5-mini",
		"gpt-5-codex",
		"gpt-5-codex-mini",
		"gpt-5.1",
		"gpt-5.1-codex",
		"gpt-5.1-codex-mini",
		"gpt-5.1-codex-max",
		"gpt-5.2",
		"gpt-5.2-codex",
		"gpt-5.3-codex",
	)
}
