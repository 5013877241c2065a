package mdiff

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"go.jacobcolvin.com/mdiff/seqmatch"
)

// DefaultCutoff is the similarity ratio at or below which two lines inside a
// replaced region are not worth refining on the character level.
const DefaultCutoff = 0.75

// ErrInvalidCutoff indicates a similarity cutoff outside [0.0, 1.0].
var ErrInvalidCutoff = errors.New("cutoff must be in range [0.0, 1.0]")

// CompositeOpCode is a line-level opcode with optional character-level
// children. Children are only attached to replace opcodes whose line pair
// passed the similarity cutoff; they describe the sub-diff of that single
// pair of lines.
type CompositeOpCode struct {
	seqmatch.OpCode

	Children []seqmatch.OpCode
}

// String returns the opcode in a compact form, marking the presence of
// children with a trailing asterisk.
func (c CompositeOpCode) String() string {
	if len(c.Children) > 0 {
		return c.OpCode.String() + "*"
	}

	return c.OpCode.String()
}

// Diff is the result of [DiffLines]: both inputs split into lines, and the
// opcode list tying them together.
type Diff struct {
	ALines  []string
	BLines  []string
	OpCodes []CompositeOpCode
}

// differ carries the configuration of one [DiffLines] run.
type differ struct {
	line   seqmatch.Matcher[string]
	inline seqmatch.Matcher[string]
	ratio  seqmatch.RatioMatcher
	cutoff float64
	fold   bool
}

// Option configures [DiffLines].
type Option func(*differ)

// WithCutoff sets the similarity cutoff for inline refinement.
// Values outside [0.0, 1.0] make [DiffLines] fail with [ErrInvalidCutoff].
// The default is [DefaultCutoff].
func WithCutoff(cutoff float64) Option {
	return func(d *differ) {
		d.cutoff = cutoff
	}
}

// WithLineMatcher sets the matcher used on the line sequences.
// The default is a [seqmatch.Heckel] matcher with replace folding.
func WithLineMatcher(m seqmatch.Matcher[string]) Option {
	return func(d *differ) {
		d.line = m
	}
}

// WithInlineMatcher sets the matcher producing the character-level children
// of refined replace opcodes. The default is [seqmatch.Standard].
func WithInlineMatcher(m seqmatch.Matcher[string]) Option {
	return func(d *differ) {
		d.inline = m
	}
}

// WithRatioMatcher sets the matcher whose similarity ratios drive the search
// for the best line pair inside replaced regions. The default is
// [seqmatch.Standard].
func WithRatioMatcher(m seqmatch.RatioMatcher) Option {
	return func(d *differ) {
		d.ratio = m
	}
}

// WithCaseFold compares and reports both inputs Unicode case-folded.
func WithCaseFold() Option {
	return func(d *differ) {
		d.fold = true
	}
}

// DiffLines splits a and b at line boundaries, diffs the line sequences with
// the configured line matcher, and refines every replace opcode: the most
// similar line pair in the replaced region is located through the three-tier
// ratio filter, and pairs above the cutoff are diffed character by character
// into children opcodes.
//
// Only configuration errors and matcher failures surface; any pair of inputs
// is valid, including empty ones.
func DiffLines(a, b string, opts ...Option) (*Diff, error) {
	d := &differ{cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(d)
	}

	if d.cutoff < 0.0 || d.cutoff > 1.0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCutoff, d.cutoff)
	}

	if d.line == nil {
		d.line = seqmatch.NewHeckel[string](nil, nil)
	}

	if d.inline == nil {
		d.inline = seqmatch.NewStandard(nil, nil)
	}

	if d.ratio == nil {
		d.ratio = seqmatch.NewStandard(nil, nil)
	}

	if d.fold {
		caser := cases.Fold()
		a = caser.String(a)
		b = caser.String(b)
	}

	aLines := splitLines(a)
	bLines := splitLines(b)

	d.line.SetSeqs(aLines, bLines)

	ops, err := d.line.GetOpCodes()
	if err != nil {
		return nil, fmt.Errorf("line diff: %w", err)
	}

	composites, err := d.refineAll(ops, aLines, bLines)
	if err != nil {
		return nil, err
	}

	return &Diff{ALines: aLines, BLines: bLines, OpCodes: composites}, nil
}

// refineAll passes opcodes through unchanged, except replace opcodes which
// are expanded by similarity refinement.
func (d *differ) refineAll(ops []seqmatch.OpCode, a, b []string) ([]CompositeOpCode, error) {
	out := make([]CompositeOpCode, 0, len(ops))

	for _, o := range ops {
		if o.Tag != seqmatch.TagReplace {
			out = append(out, CompositeOpCode{OpCode: o})

			continue
		}

		if err := d.refine(o.Tag, o.I1, o.I2, o.J1, o.J2, a, b, &out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// refine searches the rectangle a[i1:i2] x b[j1:j2] for its most similar line
// pair. An identical pair splits the rectangle around an equal opcode; a pair
// above the cutoff becomes a replace with character-level children, with both
// remaining sub-rectangles refined recursively; otherwise the rectangle is
// emitted as-is, degrading to insert or delete when one side is empty.
func (d *differ) refine(tag seqmatch.Tag, i1, i2, j1, j2 int, a, b []string, out *[]CompositeOpCode) error {
	bestI, bestJ, bestRatio := d.bestMatch(i1, i2, j1, j2, a, b)

	switch {
	case bestRatio == 1.0:
		if err := d.refine(tag, i1, bestI, j1, bestJ, a, b, out); err != nil {
			return err
		}

		*out = append(*out, CompositeOpCode{
			OpCode: seqmatch.OpCode{Tag: seqmatch.TagEqual, I1: bestI, I2: bestI + 1, J1: bestJ, J2: bestJ + 1},
		})

		return d.refine(tag, bestI+1, i2, bestJ+1, j2, a, b, out)

	case bestRatio > d.cutoff:
		if err := d.refine(tag, i1, bestI, j1, bestJ, a, b, out); err != nil {
			return err
		}

		d.inline.SetSeqs(chars(a[bestI]), chars(b[bestJ]))

		children, err := d.inline.GetOpCodes()
		if err != nil {
			return fmt.Errorf("inline diff: %w", err)
		}

		*out = append(*out, CompositeOpCode{
			OpCode:   seqmatch.OpCode{Tag: tag, I1: bestI, I2: bestI + 1, J1: bestJ, J2: bestJ + 1},
			Children: children,
		})

		return d.refine(tag, bestI+1, i2, bestJ+1, j2, a, b, out)

	default:
		if i1 == i2 && j1 == j2 {
			return nil
		}

		t := tag
		if i1 == i2 {
			t = seqmatch.TagInsert
		} else if j1 == j2 {
			t = seqmatch.TagDelete
		}

		*out = append(*out, CompositeOpCode{OpCode: seqmatch.OpCode{Tag: t, I1: i1, I2: i2, J1: j1, J2: j2}})

		return nil
	}
}

// bestMatch finds the most similar line pair in the rectangle. The two cheap
// ratio bounds are consulted first, so most pairs never pay for an exact
// ratio computation.
func (d *differ) bestMatch(i1, i2, j1, j2 int, a, b []string) (bestI, bestJ int, bestRatio float64) {
	bestI, bestJ = -1, -1

	for i := i1; i < i2; i++ {
		d.ratio.SetSeq1(chars(a[i]))

		for j := j1; j < j2; j++ {
			d.ratio.SetSeq2(chars(b[j]))

			if d.ratio.RealQuickRatio() > bestRatio && d.ratio.QuickRatio() > bestRatio && d.ratio.Ratio() > bestRatio {
				bestI, bestJ, bestRatio = i, j, d.ratio.Ratio()
			}
		}
	}

	return bestI, bestJ, bestRatio
}

// chars splits a line into its UTF-8 sequences for character-level matching.
func chars(s string) []string {
	return strings.Split(s, "")
}

// splitLines splits text at line boundaries with terminators stripped,
// accepting LF, CRLF and bare CR. Empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
