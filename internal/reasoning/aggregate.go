// ABOUTME: Uniform reasoning level computation across a mapping collection
// ABOUTME: Used to pick a sensible default level when activating a role

package reasoning

import "github.com/mauromedda/modelmap/internal/mapping"

// UniformLevel scans enabled mappings whose target decodes to a base in
// set and reports their shared level. Returns (level, true) when every
// such mapping agrees, and (LevelNone, false) on the first mismatch.
//
// An empty filtered set yields (LevelNone, true): "no GPT-capable mapping
// configured" is deliberately represented the same as an explicit uniform
// none.
func UniformLevel(mappings []mapping.ModelMapping, c Codec, set ModelSet) (Level, bool) {
	found := false
	var uniform Level
	for _, m := range mappings {
		if !m.IsEnabled() {
			continue
		}
		d := c.Decode(m.Target, set)
		if !set.Contains(c.Unprefix(d.Base)) {
			continue
		}
		if !found {
			uniform = d.Level
			found = true
			continue
		}
		if d.Level != uniform {
			return LevelNone, false
		}
	}
	if !found {
		return LevelNone, true
	}
	return uniform, true
}
