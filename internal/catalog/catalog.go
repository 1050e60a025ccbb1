// ABOUTME: Catalog of provider target models with fuzzy search
// ABOUTME: The list is externally supplied; this package only ranks and labels it

package catalog

import (
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/modelmap/internal/reasoning"
)

// Model is one selectable target model as reported by the provider list.
type Model struct {
	ID      string `json:"id" yaml:"id"`
	OwnedBy string `json:"ownedBy,omitempty" yaml:"ownedBy,omitempty"`
}

// Default returns a built-in catalog used when no provider list has been
// supplied. Mirrors what the proxy's /v1/models endpoint reports for a
// Copilot-backed setup.
func Default() []Model {
	var models []Model
	for _, id := range []string{
		"gpt-5", "gpt-5-mini", "gpt-5-codex", "gpt-5-codex-mini",
		"gpt-5.1", "gpt-5.1-codex", "gpt-5.1-codex-mini", "gpt-5.1-codex-max",
		"gpt-5.2", "gpt-5.2-codex", "gpt-5.3-codex",
	} {
		models = append(models, Model{ID: id, OwnedBy: "openai"})
	}
	models = append(models,
		Model{ID: "claude-opus-4-6", OwnedBy: "anthropic"},
		Model{ID: "claude-sonnet-4-5", OwnedBy: "anthropic"},
		Model{ID: "claude-haiku-4-5", OwnedBy: "anthropic"},
		Model{ID: "gemini-2.5-pro", OwnedBy: "google"},
		Model{ID: "gemini-2.5-flash", OwnedBy: "google"},
	)
	return models
}

// ids implements fuzzy.Source over the model IDs.
type ids []Model

func (m ids) String(i int) string { return m[i].ID }
func (m ids) Len() int            { return len(m) }

// Search ranks models against a fuzzy query, best match first. An empty
// query returns the catalog unchanged.
func Search(query string, models []Model) []Model {
	if query == "" {
		out := make([]Model, len(models))
		copy(out, models)
		return out
	}
	results := fuzzy.FindFrom(query, ids(models))
	out := make([]Model, 0, len(results))
	for _, r := range results {
		out = append(out, models[r.Index])
	}
	return out
}

// ReasoningCapable filters the catalog to models whose unprefixed ID is in
// the reasoning model set.
func ReasoningCapable(models []Model, c reasoning.Codec, set reasoning.ModelSet) []Model {
	var out []Model
	for _, m := range models {
		if set.Contains(c.Unprefix(m.ID)) {
			out = append(out, m)
		}
	}
	return out
}
