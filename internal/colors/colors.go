// Package colors provides color manipulation helpers for diff styling.
package colors

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Dim returns c blended halfway toward black in LAB space, for de-emphasized
// elements like filler lines. Invisible colors are returned unchanged.
func Dim(c color.Color) color.Color {
	cf, visible := colorful.MakeColor(c)
	if !visible {
		return c
	}

	return cf.BlendLab(colorful.Color{}, 0.5)
}

// Override returns overlay if it is a visible color, otherwise base.
func Override(base, overlay color.Color) color.Color {
	if overlay == nil {
		return base
	}

	if _, noColor := overlay.(lipgloss.NoColor); noColor {
		return base
	}

	if _, visible := colorful.MakeColor(overlay); visible {
		return overlay
	}

	return base
}

// OverrideStyles layers overlay on top of base: overlay colors replace base
// colors where set, everything else keeps the base value.
func OverrideStyles(base, overlay lipgloss.Style) lipgloss.Style {
	out := base

	if fg := Override(base.GetForeground(), overlay.GetForeground()); fg != nil {
		out = out.Foreground(fg)
	}

	if bg := Override(base.GetBackground(), overlay.GetBackground()); bg != nil {
		out = out.Background(bg)
	}

	return out
}
