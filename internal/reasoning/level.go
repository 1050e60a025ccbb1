// ABOUTME: Reasoning effort levels carried as model-alias suffixes
// ABOUTME: Closed enum none..xhigh with string round-tripping and strict parsing

package reasoning

import (
	"fmt"
	"strings"
)

// Level is the reasoning effort a target model should apply.
// LevelNone means "no suffix, no override".
type Level int

const (
	LevelNone    Level = iota // No override
	LevelMinimal              // Minimal
	LevelLow                  // Low
	LevelMedium               // Medium
	LevelHigh                 // High
	LevelXHigh                // XHigh
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelMinimal:
		return "minimal"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelXHigh:
		return "xhigh"
	default:
		return "none"
	}
}

// IsSuffix reports whether the level is rendered as an alias suffix.
// LevelNone has no suffix form.
func (l Level) IsSuffix() bool {
	return l > LevelNone && l <= LevelXHigh
}

// Levels returns all levels in ascending effort order.
func Levels() []Level {
	return []Level{LevelNone, LevelMinimal, LevelLow, LevelMedium, LevelHigh, LevelXHigh}
}

// ParseLevel converts a string to a Level. Unknown strings are rejected so
// callers at the settings boundary surface them instead of silently
// defaulting.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "none", "":
		return LevelNone, nil
	case "minimal":
		return LevelMinimal, nil
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	case "xhigh":
		return LevelXHigh, nil
	default:
		return LevelNone, fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidLevel, s, strings.Join(levelNames(), ", "))
	}
}

// suffixLevel converts an alias suffix to a Level. Unlike ParseLevel it
// never accepts "none" or the empty string: those are not valid suffixes.
func suffixLevel(s string) (Level, bool) {
	l, err := ParseLevel(s)
	if err != nil || !l.IsSuffix() {
		return LevelNone, false
	}
	return l, true
}

func levelNames() []string {
	names := make([]string, 0, len(Levels()))
	for _, l := range Levels() {
		names = append(names, l.String())
	}
	return names
}
