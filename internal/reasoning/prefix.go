// ABOUTME: Vendor prefix stripping for model identifiers
// ABOUTME: At most one known prefix is recognized per identifier; never recursive

package reasoning

import "strings"

// DefaultVendorPrefixes lists the literal prefixes a gateway may prepend to
// a base model name. Tried in order; first match wins.
var DefaultVendorPrefixes = []string{"copilot-"}

// SplitPrefix separates a known vendor prefix from a model identifier.
// Returns ("", model) when no prefix matches. Stripping is not recursive:
// "copilot-copilot-gpt-5" yields ("copilot-", "copilot-gpt-5").
func SplitPrefix(model string, prefixes []string) (prefix, unprefixed string) {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(model, p) {
			return p, model[len(p):]
		}
	}
	return "", model
}
