// ABOUTME: Styled terminal output for mapping tables and statuses
// ABOUTME: Plain text when stdout is not a TTY or --no-color is set

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mauromedda/modelmap/internal/catalog"
	"github.com/mauromedda/modelmap/internal/mapping"
	"github.com/mauromedda/modelmap/internal/reasoning"
)

type renderer struct {
	styled   bool
	header   lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	level    lipgloss.Style
}

func newRenderer(noColor bool) *renderer {
	styled := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
	return &renderer{
		styled:   styled,
		header:   lipgloss.NewStyle().Bold(true),
		active:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		level:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// roleTable prints one line per role slot: state, role, source, target and
// decoded level.
func (r *renderer) roleTable(slots []mapping.RoleSlot, store *mapping.Store, codec reasoning.Codec, set reasoning.ModelSet) {
	fmt.Println(r.style(r.header, "ROLES"))
	for _, slot := range slots {
		m, ok := store.Get(slot.SourceModel)
		if !ok || !m.IsEnabled() {
			fmt.Printf("  %s %-8s %s\n", r.style(r.inactive, "off"), slot.ID, r.style(r.inactive, slot.SourceModel))
			continue
		}
		d := codec.Decode(m.Target, set)
		line := fmt.Sprintf("  %s %-8s %s -> %s", r.style(r.active, "on "), slot.ID, slot.SourceModel, d.Base)
		if d.Level.IsSuffix() {
			line += " " + r.style(r.level, "("+d.Level.String()+")")
		}
		if m.Fork {
			line += " [fork]"
		}
		fmt.Println(line)
	}
}

// customTable prints custom mappings, if any.
func (r *renderer) customTable(store *mapping.Store, slots []mapping.RoleSlot) {
	custom := store.Custom(slots)
	if len(custom) == 0 {
		return
	}
	fmt.Println(r.style(r.header, "CUSTOM"))
	for _, m := range custom {
		state := r.style(r.active, "on ")
		if !m.IsEnabled() {
			state = r.style(r.inactive, "off")
		}
		fmt.Printf("  %s %s -> %s\n", state, m.SourceModel, m.Target)
	}
}

// modelTable prints catalog entries with display names, marking
// reasoning-capable ones.
func (r *renderer) modelTable(models []catalog.Model, codec reasoning.Codec, set reasoning.ModelSet, prefixes []string) {
	for _, m := range models {
		marker := " "
		if set.Contains(codec.Unprefix(m.ID)) {
			marker = r.style(r.level, "*")
		}
		fmt.Printf("  %s %-28s %s\n", marker, m.ID, r.style(r.inactive, catalog.DisplayName(m.ID, prefixes)))
	}
	fmt.Println(r.style(r.inactive, strings.Repeat(" ", 4)+"* supports reasoning levels"))
}
