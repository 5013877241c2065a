package fangs

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"

	"go.jacobcolvin.com/mdiff/style"
)

// ColorScheme creates a [fang.ColorScheme] from [style.Styles].
//
// CLI help and error output reuse the diff color roles: inserts color
// commands, moves color the title and program name, replaces color flags,
// deletes color errors. This keeps the help
// screen consistent with the diff view itself.
func ColorScheme(styles style.Styles) fang.ColorScheme {
	base := styles.Equal.GetForeground()
	chrome := styles.LineNumber.GetForeground()

	return fang.ColorScheme{
		Base:           base,
		Title:          styles.Move.GetForeground(),
		Description:    base,
		Codeblock:      styles.Equal.GetBackground(),
		Program:        styles.Move.GetForeground(),
		Command:        styles.Insert.GetForeground(),
		DimmedArgument: chrome,
		Comment:        chrome,
		Flag:           styles.Replace.GetForeground(),
		FlagDefault:    chrome,
		QuotedString:   styles.Insert.GetForeground(),
		Argument:       base,
		Dash:           chrome,
		ErrorHeader: [2]color.Color{
			styles.InlineDelete.GetForeground(),
			styles.InlineDelete.GetBackground(),
		},
	}
}

// ColorSchemeFunc returns a [fang.ColorSchemeFunc] that creates a
// [fang.ColorScheme] from [style.Styles].
//
// This wraps [ColorScheme] for use with [fang.WithColorSchemeFunc]. Since
// styles are built for a specific light/dark mode, the
// [lipgloss.LightDarkFunc] parameter is ignored.
func ColorSchemeFunc(styles style.Styles) fang.ColorSchemeFunc {
	return func(_ lipgloss.LightDarkFunc) fang.ColorScheme {
		return ColorScheme(styles)
	}
}
