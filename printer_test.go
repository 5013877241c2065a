package mdiff_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/mdiff"
	"go.jacobcolvin.com/mdiff/style"
)

func plainPrinter() *mdiff.Printer {
	return mdiff.NewPrinter(
		mdiff.WithStyles(style.Plain()),
		mdiff.WithCharset(mdiff.ASCIICharset()),
	)
}

func TestPrinter_Render(t *testing.T) {
	t.Parallel()

	t.Run("refined replace", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("aa1\nbb2\ncc3", "aa1\ncc2", mdiff.WithCutoff(0.6))
		require.NoError(t, err)

		want := strings.Join([]string{
			"| 1 |aa1   | 1 |aa1   ",
			"| 2-|bb2   |   |      ",
			"| 3~|cc3   | 2~|cc2   ",
		}, "\n")

		assert.Equal(t, want, plainPrinter().Render(d))
	})

	t.Run("empty diff", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("", "")
		require.NoError(t, err)

		assert.Empty(t, plainPrinter().Render(d))
	})

	t.Run("margin", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("x", "x")
		require.NoError(t, err)

		p := mdiff.NewPrinter(
			mdiff.WithStyles(style.Plain()),
			mdiff.WithCharset(mdiff.ASCIICharset()),
			mdiff.WithMargin(1),
		)

		assert.Equal(t, "| 1 |x | 1 |x ", p.Render(d))
	})

	t.Run("control characters become visible", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("a\x1bb", "a\x1bb")
		require.NoError(t, err)

		out := plainPrinter().Render(d)
		assert.Contains(t, out, "a␛b")
		assert.NotContains(t, out, "\x1b")
	})
}

func TestPrinter_Render_Moves(t *testing.T) {
	t.Parallel()

	d, err := mdiff.DiffLines("one\ntwo\nthree", "two\nthree\none")
	require.NoError(t, err)

	golden.RequireEqual(t, []byte(plainPrinter().Render(d)))
}

func TestPrinter_Fprint(t *testing.T) {
	t.Parallel()

	d, err := mdiff.DiffLines("x", "x")
	require.NoError(t, err)

	var sb strings.Builder

	require.NoError(t, plainPrinter().Fprint(&sb, d))
	assert.Equal(t, plainPrinter().Render(d), sb.String())
}
