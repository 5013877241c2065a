// Package blocks extracts maximal runs from sequences.
//
// A [Scanner] walks a sequence once and reports runs as [Block] values. Where
// a run opens and where it closes is decided by two predicates, so the same
// scanner core serves several concerns: consecutive integer runs, consecutive
// vector runs, runs of elements matching a predicate, and runs of empty
// strings. The sequence matchers build their opcode blocks on top of these.
package blocks

// Block is a maximal run located by a [Scanner], as a start index and length.
type Block struct {
	Start int
	Len   int
}

// Action tells a [Scanner] what to do with the current run when the close
// predicate fires.
type Action int

// [Action] constants.
const (
	// Keep continues the current run.
	Keep Action = iota
	// Emit ends the run before the current element and reports it.
	Emit
	// EmitWithCurrent ends the run, including the current element, and
	// reports it. The current element is consumed and cannot open a new run.
	EmitWithCurrent
	// Drop ends the run before the current element and discards it.
	Drop
)

// OpenFunc decides whether a new run opens at curr. It is only consulted
// while no run is open. hasPrev is false on the first element.
type OpenFunc[T any] func(prev T, hasPrev bool, curr T) bool

// CloseFunc decides what happens to the open run when curr is reached.
// It is only consulted while a run is open and a previous element exists.
type CloseFunc[T any] func(prev, curr T) Action

// Scanner extracts runs from sequences using open/close predicates.
// Create instances with [New] or one of the concrete constructors.
type Scanner[T any] struct {
	open         OpenFunc[T]
	close        CloseFunc[T]
	dropTrailing bool
}

// Option configures a [Scanner].
type Option[T any] func(*Scanner[T])

// WithoutTrailing discards a run still open when the sequence ends.
// By default the open run is reported.
func WithoutTrailing[T any]() Option[T] {
	return func(s *Scanner[T]) {
		s.dropTrailing = true
	}
}

// New creates a [*Scanner] from the given predicates.
func New[T any](open OpenFunc[T], close CloseFunc[T], opts ...Option[T]) *Scanner[T] {
	s := &Scanner[T]{
		open:  open,
		close: close,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Blocks returns all runs in seq, in order.
func (s *Scanner[T]) Blocks(seq []T) []Block {
	var (
		out     []Block
		prev    T
		hasPrev bool
		start   int
		inBlock bool
	)

	for idx, curr := range seq {
		if inBlock && hasPrev {
			switch s.close(prev, curr) {
			case Emit:
				out = append(out, Block{Start: start, Len: idx - start})
				inBlock = false

			case EmitWithCurrent:
				out = append(out, Block{Start: start, Len: idx - start + 1})
				inBlock = false
				prev = curr

				continue

			case Drop:
				inBlock = false

			case Keep:
			}
		}

		if !inBlock && s.open(prev, hasPrev, curr) {
			start = idx
			inBlock = true
		}

		prev = curr
		hasPrev = true
	}

	if inBlock && !s.dropTrailing {
		out = append(out, Block{Start: start, Len: len(seq) - start})
	}

	return out
}

// ConsecutiveInts returns a [*Scanner] for runs where each element is an
// integer equal to the previous plus one. The value accessor reports whether
// an element carries an integer at all; elements that do not break runs.
func ConsecutiveInts[T any](value func(T) (int, bool)) *Scanner[T] {
	return New(
		func(_ T, _ bool, curr T) bool {
			_, ok := value(curr)

			return ok
		},
		func(prev, curr T) Action {
			pv, pok := value(prev)

			cv, cok := value(curr)
			if !pok || !cok || cv != pv+1 {
				return Emit
			}

			return Keep
		},
	)
}

// ConsecutiveVectors returns a [*Scanner] for runs of equal-length integer
// vectors where every coordinate is the previous plus one.
func ConsecutiveVectors[T any](vector func(T) []int) *Scanner[T] {
	return New(
		func(_ T, _ bool, _ T) bool { return true },
		func(prev, curr T) Action {
			pv, cv := vector(prev), vector(curr)
			if len(pv) != len(cv) {
				return Emit
			}

			for k := range pv {
				if cv[k] != pv[k]+1 {
					return Emit
				}
			}

			return Keep
		},
	)
}

// Matching returns a [*Scanner] for runs of elements satisfying pred.
func Matching[T any](pred func(T) bool) *Scanner[T] {
	return New(
		func(_ T, _ bool, curr T) bool { return pred(curr) },
		func(_, curr T) Action {
			if !pred(curr) {
				return Emit
			}

			return Keep
		},
	)
}

// EmptyStrings returns a [*Scanner] for runs of empty strings.
// Splitting text into paragraphs builds on this.
func EmptyStrings() *Scanner[string] {
	return Matching(func(s string) bool { return s == "" })
}

// Invert returns the gaps left uncovered by bs within a sequence of the given
// length. Blocks must be ordered and non-overlapping; parts beyond length are
// ignored.
func Invert(length int, bs []Block) []Block {
	var out []Block

	pos := 0

	for _, b := range bs {
		if b.Start >= length {
			break
		}

		if b.Start > pos {
			out = append(out, Block{Start: pos, Len: b.Start - pos})
		}

		if end := b.Start + b.Len; end > pos {
			pos = min(end, length)
		}
	}

	if pos < length {
		out = append(out, Block{Start: pos, Len: length - pos})
	}

	return out
}

// Paragraphs splits lines into runs of non-empty lines.
// Blank lines separate paragraphs and belong to none of them.
func Paragraphs(lines []string) []Block {
	return Matching(func(s string) bool { return s != "" }).Blocks(lines)
}
