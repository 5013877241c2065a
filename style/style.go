// Package style provides the lipgloss styles used to render diff output.
package style

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"go.jacobcolvin.com/mdiff/internal/colors"

	"go.jacobcolvin.com/mdiff/seqmatch"
)

// Mode represents the color scheme mode of a theme.
type Mode int

// Color scheme modes.
//
//nolint:grouper // Enum.
const (
	Dark Mode = iota
	Light
)

// Styles holds one style per rendered element. Line styles color whole diff
// lines by their opcode tag; inline styles color changed character runs
// inside refined replace lines.
type Styles struct {
	// Line-level styles by tag.
	Equal   lipgloss.Style
	Delete  lipgloss.Style
	Insert  lipgloss.Style
	Move    lipgloss.Style
	Replace lipgloss.Style

	// Inline styles for character-level children.
	InlineDelete  lipgloss.Style
	InlineInsert  lipgloss.Style
	InlineMove    lipgloss.Style
	InlineReplace lipgloss.Style

	// Chrome.
	LineNumber lipgloss.Style
	Separator  lipgloss.Style
	Filler     lipgloss.Style
}

// Line returns the line-level style for the given tag.
func (s Styles) Line(tag seqmatch.Tag) lipgloss.Style {
	switch tag {
	case seqmatch.TagDelete:
		return s.Delete
	case seqmatch.TagInsert:
		return s.Insert
	case seqmatch.TagMove, seqmatch.TagMoved:
		return s.Move
	case seqmatch.TagReplace:
		return s.Replace
	default:
		return s.Equal
	}
}

// Inline returns the character-level style for the given child tag. Equal
// children get the [Styles.Equal] style.
func (s Styles) Inline(tag seqmatch.Tag) lipgloss.Style {
	switch tag {
	case seqmatch.TagDelete:
		return s.InlineDelete
	case seqmatch.TagInsert:
		return s.InlineInsert
	case seqmatch.TagMove, seqmatch.TagMoved:
		return s.InlineMove
	case seqmatch.TagReplace:
		return s.InlineReplace
	default:
		return s.Equal
	}
}

// Plain returns styles that render no colors at all. Useful for
// non-terminal output and for deterministic test assertions.
func Plain() Styles {
	return Styles{}
}

// Default returns the built-in color scheme for the given mode.
func Default(mode Mode) Styles {
	base := lipgloss.NewStyle()

	deleted := charmtone.Cherry
	inserted := charmtone.Guac
	moved := charmtone.Malibu
	replaced := charmtone.Mustard

	chrome := charmtone.Squid
	if mode == Light {
		chrome = charmtone.Charcoal
	}

	return Styles{
		Equal:   base,
		Delete:  base.Foreground(deleted),
		Insert:  base.Foreground(inserted),
		Move:    base.Foreground(moved),
		Replace: base.Foreground(replaced),

		// Inline runs invert to background color so they stand out inside
		// an already colored line.
		InlineDelete:  base.Background(deleted).Foreground(charmtone.Salt),
		InlineInsert:  base.Background(inserted).Foreground(charmtone.Pepper),
		InlineMove:    base.Background(moved).Foreground(charmtone.Pepper),
		InlineReplace: base.Background(replaced).Foreground(charmtone.Pepper),

		LineNumber: base.Foreground(chrome),
		Separator:  base.Foreground(chrome),
		Filler:     base.Foreground(colors.Dim(chrome)),
	}
}
