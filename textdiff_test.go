package mdiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/mdiff"
	"go.jacobcolvin.com/mdiff/seqmatch"
)

func op(tag seqmatch.Tag, i1, i2, j1, j2 int) seqmatch.OpCode {
	return seqmatch.OpCode{Tag: tag, I1: i1, I2: i2, J1: j1, J2: j2}
}

func comp(tag seqmatch.Tag, i1, i2, j1, j2 int, children ...seqmatch.OpCode) mdiff.CompositeOpCode {
	return mdiff.CompositeOpCode{OpCode: op(tag, i1, i2, j1, j2), Children: children}
}

func TestDiffLines(t *testing.T) {
	t.Parallel()

	t.Run("similar line refined to characters", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("aa1\nbb2\ncc3", "aa1\ncc2", mdiff.WithCutoff(0.6))
		require.NoError(t, err)

		assert.Equal(t, []string{"aa1", "bb2", "cc3"}, d.ALines)
		assert.Equal(t, []string{"aa1", "cc2"}, d.BLines)

		want := []mdiff.CompositeOpCode{
			comp(seqmatch.TagEqual, 0, 1, 0, 1),
			comp(seqmatch.TagDelete, 1, 2, 1, 1),
			comp(seqmatch.TagReplace, 2, 3, 1, 2,
				op(seqmatch.TagEqual, 0, 2, 0, 2),
				op(seqmatch.TagReplace, 2, 3, 2, 3),
			),
		}
		assert.Equal(t, want, d.OpCodes)
	})

	t.Run("identical pair inside replaced region", func(t *testing.T) {
		t.Parallel()

		// The duplicated "dup" lines defeat the Heckel heuristic, leaving
		// one big replace. Refinement recovers them as equal pairs around
		// the genuinely replaced middle line.
		d, err := mdiff.DiffLines("dup\na\ndup", "dup\nb\ndup")
		require.NoError(t, err)

		want := []mdiff.CompositeOpCode{
			comp(seqmatch.TagEqual, 0, 1, 0, 1),
			comp(seqmatch.TagReplace, 1, 2, 1, 2),
			comp(seqmatch.TagEqual, 2, 3, 2, 3),
		}
		assert.Equal(t, want, d.OpCodes)
	})

	t.Run("dissimilar replace stays unrefined", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("abc", "xyz")
		require.NoError(t, err)

		assert.Equal(t, []mdiff.CompositeOpCode{comp(seqmatch.TagReplace, 0, 1, 0, 1)}, d.OpCodes)
	})

	t.Run("identical inputs", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("a\nb\nc", "a\nb\nc")
		require.NoError(t, err)

		assert.Equal(t, []mdiff.CompositeOpCode{comp(seqmatch.TagEqual, 0, 3, 0, 3)}, d.OpCodes)
	})

	t.Run("empty inputs", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("", "")
		require.NoError(t, err)

		assert.Empty(t, d.ALines)
		assert.Empty(t, d.BLines)
		assert.Empty(t, d.OpCodes)
	})

	t.Run("crlf input", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("a\r\nb\r\n", "a\nb\n")
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, d.ALines)
		assert.Equal(t, []string{"a", "b"}, d.BLines)
		assert.Equal(t, []mdiff.CompositeOpCode{comp(seqmatch.TagEqual, 0, 2, 0, 2)}, d.OpCodes)
	})

	t.Run("moved block", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("one\ntwo\nthree", "two\nthree\none")
		require.NoError(t, err)

		want := []mdiff.CompositeOpCode{
			comp(seqmatch.TagMove, 0, 1, 2, 2),
			comp(seqmatch.TagEqual, 1, 3, 0, 2),
			comp(seqmatch.TagMoved, 0, 0, 2, 3),
		}
		assert.Equal(t, want, d.OpCodes)
	})

	t.Run("case folding", func(t *testing.T) {
		t.Parallel()

		d, err := mdiff.DiffLines("Hello\nWorld", "hello\nworld", mdiff.WithCaseFold())
		require.NoError(t, err)

		assert.Equal(t, []string{"hello", "world"}, d.ALines)
		assert.Equal(t, []mdiff.CompositeOpCode{comp(seqmatch.TagEqual, 0, 2, 0, 2)}, d.OpCodes)
	})

	t.Run("injected line matcher", func(t *testing.T) {
		t.Parallel()

		// The standard matcher has no move detection, so the rotation
		// degrades to a delete and an insert.
		d, err := mdiff.DiffLines("one\ntwo\nthree", "two\nthree\none",
			mdiff.WithLineMatcher(seqmatch.NewStandard(nil, nil)),
		)
		require.NoError(t, err)

		want := []mdiff.CompositeOpCode{
			comp(seqmatch.TagDelete, 0, 1, 0, 0),
			comp(seqmatch.TagEqual, 1, 3, 0, 2),
			comp(seqmatch.TagInsert, 3, 3, 2, 3),
		}
		assert.Equal(t, want, d.OpCodes)
	})
}

func TestDiffLines_InvalidCutoff(t *testing.T) {
	t.Parallel()

	for _, cutoff := range []float64{-0.1, 1.1, 2.0} {
		_, err := mdiff.DiffLines("a", "b", mdiff.WithCutoff(cutoff))
		require.ErrorIs(t, err, mdiff.ErrInvalidCutoff)
	}

	for _, cutoff := range []float64{0.0, 0.5, 1.0} {
		_, err := mdiff.DiffLines("a", "b", mdiff.WithCutoff(cutoff))
		require.NoError(t, err)
	}
}

// TestDiffLines_Preservation checks that the returned line slices reproduce
// the inputs when joined back with newlines.
func TestDiffLines_Preservation(t *testing.T) {
	t.Parallel()

	a := "first\nsecond\nthird"
	b := "third\nsecond one\nfirst"

	d, err := mdiff.DiffLines(a, b, mdiff.WithCutoff(0.5))
	require.NoError(t, err)

	assert.Equal(t, a, strings.Join(d.ALines, "\n"))
	assert.Equal(t, b, strings.Join(d.BLines, "\n"))
}

func TestCompositeOpCode_String(t *testing.T) {
	t.Parallel()

	plain := comp(seqmatch.TagDelete, 1, 2, 1, 1)
	assert.Equal(t, "delete(1,2,1,1)", plain.String())

	refined := comp(seqmatch.TagReplace, 2, 3, 1, 2, op(seqmatch.TagEqual, 0, 2, 0, 2))
	assert.Equal(t, "replace(2,3,1,2)*", refined.String())
}
