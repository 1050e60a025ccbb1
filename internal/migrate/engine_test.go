// ABOUTME: Tests for the mapping key migration engine
// ABOUTME: Covers forward rewrite, idempotence and the duplicate-skip rule

package migrate

import (
	"testing"

	"github.com/mauromedda/modelmap/internal/mapping"
)

var testRules = []Rule{
	{From: "claude-opus-4-5-20251101", To: "claude-opus-4-6"},
}

func TestMigrate_RewritesKey(t *testing.T) {
	in := []mapping.ModelMapping{
		{SourceModel: "claude-opus-4-5-20251101", Target: "x"},
	}
	active := []string{"claude-opus-4-6"}

	out, migrated := Migrate(in, testRules, active)
	if !migrated {
		t.Fatal("expected migrated=true")
	}
	if len(out) != 1 || out[0].SourceModel != "claude-opus-4-6" || out[0].Target != "x" {
		t.Errorf("unexpected result: %+v", out)
	}

	// Input untouched.
	if in[0].SourceModel != "claude-opus-4-5-20251101" {
		t.Error("Migrate must not mutate its input")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	in := []mapping.ModelMapping{
		{SourceModel: "claude-opus-4-5-20251101", Target: "x"},
	}
	active := []string{"claude-opus-4-6"}

	first, migrated := Migrate(in, testRules, active)
	if !migrated {
		t.Fatal("expected first run to migrate")
	}

	second, migrated := Migrate(first, testRules, active)
	if migrated {
		t.Error("expected second run to be a no-op")
	}
	if second[0].SourceModel != first[0].SourceModel {
		t.Errorf("second run changed the collection: %+v", second)
	}
}

func TestMigrate_SkipsWhenTargetMapped(t *testing.T) {
	in := []mapping.ModelMapping{
		{SourceModel: "claude-opus-4-5-20251101", Target: "old"},
		{SourceModel: "claude-opus-4-6", Target: "new"},
	}
	active := []string{"claude-opus-4-6"}

	out, migrated := Migrate(in, testRules, active)
	if migrated {
		t.Error("expected no migration when the target key is taken")
	}
	// The orphaned old entry is left in place unmodified.
	if out[0].SourceModel != "claude-opus-4-5-20251101" || out[0].Target != "old" {
		t.Errorf("old entry modified: %+v", out[0])
	}
	if out[1].Target != "new" {
		t.Errorf("target entry modified: %+v", out[1])
	}
}

func TestMigrate_SkipsInactiveTarget(t *testing.T) {
	in := []mapping.ModelMapping{
		{SourceModel: "claude-opus-4-5-20251101", Target: "x"},
	}

	out, migrated := Migrate(in, testRules, []string{"something-else"})
	if migrated {
		t.Error("expected no migration when the target is not an active source")
	}
	if out[0].SourceModel != "claude-opus-4-5-20251101" {
		t.Errorf("entry rewritten despite inactive target: %+v", out[0])
	}
}

func TestMigrate_RulesSharingTargetRewriteOnce(t *testing.T) {
	rules := []Rule{
		{From: "old-a", To: "claude-opus-4-6"},
		{From: "old-b", To: "claude-opus-4-6"},
	}
	in := []mapping.ModelMapping{
		{SourceModel: "old-a", Target: "x"},
		{SourceModel: "old-b", Target: "y"},
	}
	active := []string{"claude-opus-4-6"}

	out, migrated := Migrate(in, rules, active)
	if !migrated {
		t.Fatal("expected the first rule to migrate")
	}

	count := 0
	for _, m := range out {
		if m.SourceModel == "claude-opus-4-6" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("%d mappings share sourceModel claude-opus-4-6, want 1: %+v", count, out)
	}
	// The losing entry stays under its old key, like any other skip.
	if out[1].SourceModel != "old-b" || out[1].Target != "y" {
		t.Errorf("second entry should be left untouched: %+v", out[1])
	}
}

func TestMigrate_UnrelatedEntriesUntouched(t *testing.T) {
	enabled := false
	in := []mapping.ModelMapping{
		{SourceModel: "claude-opus-4-5-20251101", Target: "x"},
		{SourceModel: "custom", Target: "y", Enabled: &enabled, Fork: true},
	}
	active := []string{"claude-opus-4-6"}

	out, migrated := Migrate(in, testRules, active)
	if !migrated {
		t.Fatal("expected migration")
	}
	got := out[1]
	if got.SourceModel != "custom" || got.Target != "y" || got.Enabled == nil || *got.Enabled || !got.Fork {
		t.Errorf("unrelated entry changed: %+v", got)
	}
}

func TestMigrate_EmptyInputs(t *testing.T) {
	if _, migrated := Migrate(nil, testRules, []string{"claude-opus-4-6"}); migrated {
		t.Error("empty collection should not migrate")
	}
	in := []mapping.ModelMapping{{SourceModel: "a", Target: "x"}}
	if _, migrated := Migrate(in, nil, []string{"a"}); migrated {
		t.Error("no rules should not migrate")
	}
}

func TestDefaultRules_TargetsAreSlotSources(t *testing.T) {
	sources := mapping.SlotSources(mapping.DefaultRoleSlots())
	for _, r := range DefaultRules() {
		found := false
		for _, s := range sources {
			if s == r.To {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("rule target %s is not a default slot source", r.To)
		}
	}
}
