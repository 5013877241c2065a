package seqmatch

// displacementEntry tracks every occurrence of one element: its indexes in
// each sequence and a cursor over the not-yet-paired ones.
type displacementEntry struct {
	aIndexes []int
	bIndexes []int
	aCursor  int
	bCursor  int
}

// Displacement is a move-aware [Matcher] that records every occurrence of
// every element and pairs occurrences greedily in textual order.
//
// Where [Heckel] anchors only unique elements, this variant anchors every
// shared occurrence, so displacements on duplicate-rich inputs are always
// detected. The price is that greedy pairing can split coherent blocks into
// several smaller moves. Use it when finding all displacements matters more
// than block shape.
//
// Create instances with [NewDisplacement].
type Displacement[T comparable] struct {
	a, b []T
	na   []cell
	oa   []cell
	cfg  config
}

// NewDisplacement creates a [*Displacement] matcher for the given sequences.
// The algorithm only runs on [Displacement.GetOpCodes].
func NewDisplacement[T comparable](a, b []T, opts ...Option) *Displacement[T] {
	return &Displacement[T]{a: a, b: b, cfg: newConfig(opts)}
}

// SetSeq1 replaces the first sequence.
func (d *Displacement[T]) SetSeq1(a []T) { d.a = a }

// SetSeq2 replaces the second sequence.
func (d *Displacement[T]) SetSeq2(b []T) { d.b = b }

// SetSeqs replaces both sequences.
func (d *Displacement[T]) SetSeqs(a, b []T) {
	d.SetSeq1(a)
	d.SetSeq2(b)
}

// GetOpCodes runs the annotation and returns the opcode list.
func (d *Displacement[T]) GetOpCodes() ([]OpCode, error) {
	d.annotate()

	return extractOpCodes(d.na, d.oa, d.cfg.replaceMode)
}

// annotate pairs occurrences by cursor advancement. A position whose element
// has no occurrence left on the other side stays unanchored.
func (d *Displacement[T]) annotate() {
	table := make(map[T]*displacementEntry)

	entry := func(v T) *displacementEntry {
		e, ok := table[v]
		if !ok {
			e = &displacementEntry{}
			table[v] = e
		}

		return e
	}

	for i, v := range d.a {
		e := entry(v)
		e.aIndexes = append(e.aIndexes, i)
	}

	for j, v := range d.b {
		e := entry(v)
		e.bIndexes = append(e.bIndexes, j)
	}

	na := make([]cell, 0, len(d.a))

	for _, v := range d.a {
		e := table[v]
		if e.bCursor < len(e.bIndexes) {
			na = append(na, anchorCell(e.bIndexes[e.bCursor]))
			e.bCursor++
		} else {
			na = append(na, symbolCell(-1))
		}
	}

	oa := make([]cell, 0, len(d.b))

	for _, v := range d.b {
		e := table[v]
		if e.aCursor < len(e.aIndexes) {
			oa = append(oa, anchorCell(e.aIndexes[e.aCursor]))
			e.aCursor++
		} else {
			oa = append(oa, symbolCell(-1))
		}
	}

	d.na = na
	d.oa = oa
}
