package seqmatch_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/mdiff/seqmatch"
)

// propertyInputs are exercised against every matcher variant below.
var propertyInputs = []struct {
	name string
	a    []string
	b    []string
}{
	{name: "heckel paper", a: heckelPaperA, b: heckelPaperB},
	{name: "reversal", a: []string{"1", "2", "3", "4", "5"}, b: []string{"5", "4", "3", "2", "1"}},
	{name: "rotation", a: []string{"1", "2", "3", "4"}, b: []string{"2", "3", "4", "1"}},
	{name: "disjoint", a: []string{"a", "b"}, b: []string{"c", "d"}},
	{name: "equal", a: []string{"a", "b", "c"}, b: []string{"a", "b", "c"}},
	{name: "empty", a: nil, b: nil},
	{name: "insert only", a: nil, b: []string{"x"}},
	{name: "delete only", a: []string{"x"}, b: nil},
	{name: "duplicates", a: []string{"a", "b", "a"}, b: []string{"a", "a", "b"}},
}

func matcherVariants(a, b []string) map[string]seqmatch.Matcher[string] {
	return map[string]seqmatch.Matcher[string]{
		"heckel":                  seqmatch.NewHeckel(a, b),
		"heckel no replace":       seqmatch.NewHeckel(a, b, seqmatch.WithReplaceMode(false)),
		"displacement":            seqmatch.NewDisplacement(a, b),
		"displacement no replace": seqmatch.NewDisplacement(a, b, seqmatch.WithReplaceMode(false)),
	}
}

// TestOpCodeProperties checks the structural guarantees every opcode list
// carries: both sequences are tiled exactly, equal runs compare equal, and
// every move has its moved counterpart.
func TestOpCodeProperties(t *testing.T) {
	t.Parallel()

	for _, input := range propertyInputs {
		for variant, m := range matcherVariants(input.a, input.b) {
			t.Run(fmt.Sprintf("%s/%s", input.name, variant), func(t *testing.T) {
				t.Parallel()

				ops, err := m.GetOpCodes()
				require.NoError(t, err)

				assertTiling(t, input.a, input.b, ops)
				assertEqualSoundness(t, input.a, input.b, ops)
				assertMovePairing(t, input.a, input.b, ops)
			})
		}
	}
}

// assertTiling checks that concatenating the a-side ranges of all opcodes
// placed on the a side reconstructs a, and symmetrically for b.
func assertTiling(t *testing.T, a, b []string, ops []seqmatch.OpCode) {
	t.Helper()

	var gotA, gotB []string

	for _, o := range ops {
		if o.Tag != seqmatch.TagMoved && o.Tag != seqmatch.TagInsert {
			gotA = append(gotA, a[o.I1:o.I2]...)
		}

		if o.Tag != seqmatch.TagMove && o.Tag != seqmatch.TagDelete {
			gotB = append(gotB, b[o.J1:o.J2]...)
		}
	}

	assert.Equal(t, a, sliceOrNil(gotA), "a-side tiling")
	assert.Equal(t, b, sliceOrNil(gotB), "b-side tiling")
}

func assertEqualSoundness(t *testing.T, a, b []string, ops []seqmatch.OpCode) {
	t.Helper()

	for _, o := range ops {
		if o.Tag != seqmatch.TagEqual {
			continue
		}

		assert.Equal(t, a[o.I1:o.I2], b[o.J1:o.J2], "equal opcode %v", o)
		assert.Positive(t, o.I2-o.I1, "equal opcode %v has empty range", o)
	}
}

// assertMovePairing checks that moves and moveds pair up: same count, and the
// multiset of moved run contents in a equals the multiset of moved-target run
// contents in b.
func assertMovePairing(t *testing.T, a, b []string, ops []seqmatch.OpCode) {
	t.Helper()

	var moveRuns, movedRuns []string

	for _, o := range ops {
		switch o.Tag {
		case seqmatch.TagMove:
			moveRuns = append(moveRuns, fmt.Sprint(a[o.I1:o.I2]))
		case seqmatch.TagMoved:
			movedRuns = append(movedRuns, fmt.Sprint(b[o.J1:o.J2]))
		}
	}

	sort.Strings(moveRuns)
	sort.Strings(movedRuns)

	assert.Equal(t, moveRuns, movedRuns)
}

func sliceOrNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}

// TestEqualInputs checks that identical inputs yield a single covering equal
// opcode, or an empty list for empty inputs.
func TestEqualInputs(t *testing.T) {
	t.Parallel()

	for _, input := range [][]string{nil, {"a"}, {"a", "b", "c"}} {
		for variant, m := range matcherVariants(input, input) {
			t.Run(fmt.Sprintf("len %d/%s", len(input), variant), func(t *testing.T) {
				t.Parallel()

				ops, err := m.GetOpCodes()
				require.NoError(t, err)

				if len(input) == 0 {
					assert.Empty(t, ops)

					return
				}

				assert.Equal(t, []seqmatch.OpCode{op(seqmatch.TagEqual, 0, len(input), 0, len(input))}, ops)
			})
		}
	}

	// The Heckel heuristic cannot anchor elements without a unique
	// occurrence, so the all-duplicates case holds for Displacement only.
	t.Run("all duplicates/displacement", func(t *testing.T) {
		t.Parallel()

		input := []string{"x", "x", "x"}

		ops, err := seqmatch.NewDisplacement(input, input).GetOpCodes()
		require.NoError(t, err)

		assert.Equal(t, []seqmatch.OpCode{op(seqmatch.TagEqual, 0, 3, 0, 3)}, ops)
	})
}

// TestReversalDuality checks that swapping the inputs swaps the range pairs
// and the move/moved and insert/delete tags.
func TestReversalDuality(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a []string
		b []string
	}{
		"deletion":  {a: []string{"x", "y", "z"}, b: []string{"x", "z"}},
		"insertion": {a: []string{"x", "z"}, b: []string{"x", "y", "z"}},
		"rotation":  {a: []string{"1", "2", "3", "4"}, b: []string{"2", "3", "4", "1"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			forward, err := seqmatch.NewHeckel(tc.a, tc.b, seqmatch.WithReplaceMode(false)).GetOpCodes()
			require.NoError(t, err)

			backward, err := seqmatch.NewHeckel(tc.b, tc.a, seqmatch.WithReplaceMode(false)).GetOpCodes()
			require.NoError(t, err)

			assert.Equal(t, backward, dual(forward))
		})
	}
}

func dual(ops []seqmatch.OpCode) []seqmatch.OpCode {
	swap := map[seqmatch.Tag]seqmatch.Tag{
		seqmatch.TagEqual:   seqmatch.TagEqual,
		seqmatch.TagReplace: seqmatch.TagReplace,
		seqmatch.TagDelete:  seqmatch.TagInsert,
		seqmatch.TagInsert:  seqmatch.TagDelete,
		seqmatch.TagMove:    seqmatch.TagMoved,
		seqmatch.TagMoved:   seqmatch.TagMove,
	}

	out := make([]seqmatch.OpCode, 0, len(ops))
	for _, o := range ops {
		out = append(out, seqmatch.OpCode{Tag: swap[o.Tag], I1: o.J1, I2: o.J2, J1: o.I1, J2: o.I2})
	}

	return out
}

// TestReplaceFoldIdempotence checks that folding is stable: a folded list
// contains no delete immediately followed by an insert.
func TestReplaceFoldIdempotence(t *testing.T) {
	t.Parallel()

	for _, input := range propertyInputs {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			ops, err := seqmatch.NewHeckel(input.a, input.b).GetOpCodes()
			require.NoError(t, err)

			for i := 1; i < len(ops); i++ {
				if ops[i].Tag == seqmatch.TagInsert {
					assert.NotEqual(t, seqmatch.TagDelete, ops[i-1].Tag, "unfolded pair at %d", i)
				}
			}
		})
	}
}
