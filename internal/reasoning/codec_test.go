// ABOUTME: Tests for the alias codec
// ABOUTME: Covers round-trips, rejected decompositions and prefix-aware encoding

package reasoning

import "testing"

func testCodec() Codec {
	return Codec{Prefixes: []string{"copilot-"}}
}

func TestCodec_Decode(t *testing.T) {
	c := testCodec()
	set := NewModelSet("gpt-5", "gpt-5-codex")

	tests := []struct {
		name      string
		alias     string
		wantBase  string
		wantLevel Level
	}{
		{"bare base", "gpt-5", "gpt-5", LevelNone},
		{"with level", "gpt-5(high)", "gpt-5", LevelHigh},
		{"prefixed with level", "copilot-gpt-5(medium)", "copilot-gpt-5", LevelMedium},
		{"unknown base keeps suffix", "my-model(custom)", "my-model(custom)", LevelNone},
		{"known base invalid level", "gpt-5(ultra)", "gpt-5(ultra)", LevelNone},
		{"unknown base valid level", "claude-opus-4-6(high)", "claude-opus-4-6(high)", LevelNone},
		{"empty parens", "gpt-5()", "gpt-5()", LevelNone},
		{"opaque model", "claude-opus-4-6", "claude-opus-4-6", LevelNone},
		{"none is not a suffix", "gpt-5(none)", "gpt-5(none)", LevelNone},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := c.Decode(test.alias, set)
			if d.Base != test.wantBase || d.Level != test.wantLevel {
				t.Errorf("Decode(%q) = {%q, %v}, want {%q, %v}",
					test.alias, d.Base, d.Level, test.wantBase, test.wantLevel)
			}
		})
	}
}

func TestCodec_Encode(t *testing.T) {
	c := testCodec()
	set := NewModelSet("gpt-5", "gpt-5-codex")

	tests := []struct {
		name  string
		alias string
		level Level
		want  string
	}{
		{"add suffix", "gpt-5", LevelHigh, "gpt-5(high)"},
		{"replace suffix", "gpt-5(low)", LevelXHigh, "gpt-5(xhigh)"},
		{"strip suffix", "gpt-5(high)", LevelNone, "gpt-5"},
		{"none on bare base", "gpt-5", LevelNone, "gpt-5"},
		{"prefixed", "copilot-gpt-5", LevelHigh, "copilot-gpt-5(high)"},
		{"non-capable unchanged", "claude-opus-4-6", LevelHigh, "claude-opus-4-6"},
		{"non-capable with parens unchanged", "my-model(custom)", LevelLow, "my-model(custom)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := c.Encode(test.alias, test.level, set)
			if got != test.want {
				t.Errorf("Encode(%q, %v) = %q, want %q", test.alias, test.level, got, test.want)
			}
		})
	}
}

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	c := testCodec()
	set := DefaultGPTModels()

	for base := range set {
		for _, level := range Levels() {
			if !level.IsSuffix() {
				continue
			}
			encoded := c.Encode(base, level, set)
			d := c.Decode(encoded, set)
			if d.Base != base || d.Level != level {
				t.Errorf("round trip %q/%v via %q -> {%q, %v}", base, level, encoded, d.Base, d.Level)
			}
		}
	}
}

func TestCodec_EncodeIdentityOutsideSet(t *testing.T) {
	c := testCodec()
	set := NewModelSet("gpt-5")

	aliases := []string{"gemini-2.5-pro", "claude-sonnet-4-5", "weird(name)", ""}
	for _, alias := range aliases {
		for _, level := range Levels() {
			if got := c.Encode(alias, level, set); got != alias {
				t.Errorf("Encode(%q, %v) = %q, want identity", alias, level, got)
			}
		}
	}
}

func TestCodec_DecodeRefreshedSet(t *testing.T) {
	c := testCodec()

	// The set is passed per call; the same alias decodes differently after
	// a refresh.
	alias := "gpt-6(high)"
	if d := c.Decode(alias, NewModelSet("gpt-5")); d.Level != LevelNone {
		t.Errorf("expected opaque decode before refresh, got %+v", d)
	}
	if d := c.Decode(alias, NewModelSet("gpt-5", "gpt-6")); d.Base != "gpt-6" || d.Level != LevelHigh {
		t.Errorf("expected decode after refresh, got %+v", d)
	}
}
