package seqmatch

import "github.com/pmezard/go-difflib/difflib"

// Standard is a classical [Matcher] without move detection, adapting
// [difflib.SequenceMatcher]. Beyond the [Matcher] contract it exposes the
// three-tier similarity ratios, making it the [RatioMatcher] used for inline
// refinement.
//
// Create instances with [NewStandard].
type Standard struct {
	m *difflib.SequenceMatcher
}

// NewStandard creates a [*Standard] matcher for the given sequences.
func NewStandard(a, b []string) *Standard {
	return &Standard{m: difflib.NewMatcher(a, b)}
}

// SetSeq1 replaces the first sequence.
func (s *Standard) SetSeq1(a []string) { s.m.SetSeq1(a) }

// SetSeq2 replaces the second sequence.
func (s *Standard) SetSeq2(b []string) { s.m.SetSeq2(b) }

// SetSeqs replaces both sequences.
func (s *Standard) SetSeqs(a, b []string) { s.m.SetSeqs(a, b) }

// GetOpCodes returns the opcode list. Only the four classical tags appear;
// the error is always nil and exists to satisfy [Matcher].
func (s *Standard) GetOpCodes() ([]OpCode, error) {
	raw := s.m.GetOpCodes()

	out := make([]OpCode, 0, len(raw))
	for _, op := range raw {
		out = append(out, OpCode{Tag: tagOf(op.Tag), I1: op.I1, I2: op.I2, J1: op.J1, J2: op.J2})
	}

	return out, nil
}

// Ratio returns the exact similarity of the sequences in [0, 1].
func (s *Standard) Ratio() float64 { return s.m.Ratio() }

// QuickRatio returns an upper bound on [Standard.Ratio] cheaply.
func (s *Standard) QuickRatio() float64 { return s.m.QuickRatio() }

// RealQuickRatio returns an even cheaper upper bound.
func (s *Standard) RealQuickRatio() float64 { return s.m.RealQuickRatio() }

func tagOf(t byte) Tag {
	switch t {
	case 'd':
		return TagDelete
	case 'i':
		return TagInsert
	case 'r':
		return TagReplace
	default:
		return TagEqual
	}
}
