// ABOUTME: Alias codec for the base(level) reasoning suffix syntax
// ABOUTME: Decode is total; rejected decompositions degrade to an opaque base

package reasoning

import (
	"fmt"
	"regexp"
)

// suffixPattern matches a trailing parenthesized group: "base(level)".
var suffixPattern = regexp.MustCompile(`^(.*)\(([^)]+)\)$`)

// Decoded is the tagged form of a model alias. Base never carries a
// suffix; Level is LevelNone when the alias had none (or when the
// decomposition was rejected).
type Decoded struct {
	Base  string
	Level Level
}

// Codec encodes and decodes reasoning-level suffixes inside model aliases.
// Prefixes are the known vendor prefixes stripped before set membership
// tests; they stay part of the base in the round-tripped alias.
type Codec struct {
	Prefixes []string
}

// NewCodec returns a codec using the default vendor prefixes.
func NewCodec() Codec {
	return Codec{Prefixes: DefaultVendorPrefixes}
}

// Unprefix strips at most one known vendor prefix from a model identifier.
func (c Codec) Unprefix(model string) string {
	_, rest := SplitPrefix(model, c.Prefixes)
	return rest
}

// Decode splits an alias into base and level. A trailing "(level)" group is
// only accepted when the unprefixed base is in set AND the level is a valid
// suffix; otherwise the entire alias is treated as an opaque base with
// LevelNone. Base model names that legitimately contain parentheses
// therefore decode as suffix-less rather than erroring.
func (c Codec) Decode(alias string, set ModelSet) Decoded {
	m := suffixPattern.FindStringSubmatch(alias)
	if m == nil {
		return Decoded{Base: alias, Level: LevelNone}
	}

	base, suffix := m[1], m[2]
	level, ok := suffixLevel(suffix)
	if !ok || !set.Contains(c.Unprefix(base)) {
		return Decoded{Base: alias, Level: LevelNone}
	}
	return Decoded{Base: base, Level: level}
}

// Encode replaces the reasoning suffix on an alias. Any existing suffix is
// discarded first. Aliases whose base is not in set are returned unchanged:
// models that cannot carry a suffix must never be silently rewritten.
func (c Codec) Encode(alias string, level Level, set ModelSet) string {
	base := c.Decode(alias, set).Base
	if !set.Contains(c.Unprefix(base)) {
		return alias
	}
	if level == LevelNone {
		return base
	}
	return fmt.Sprintf("%s(%s)", base, level)
}
