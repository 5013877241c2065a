package seqmatch

import (
	"cmp"
	"errors"
	"slices"

	"go.jacobcolvin.com/mdiff/blocks"
	"go.jacobcolvin.com/mdiff/internal/lis"
)

// ErrOpcodeExtraction indicates the opcode merge could not advance over the
// annotation arrays. The annotation contract rules this out; hitting it is a
// bug, not an input condition.
var ErrOpcodeExtraction = errors.New("opcode extraction cannot advance")

// anchorPair is an anchored NA position: the index in NA and the anchor value
// (the corresponding index in b).
type anchorPair struct {
	idx int
	val int
}

// opBlock is a run of anchored positions: start index in NA, start anchor
// value (the index in b), and length.
type opBlock struct {
	i int
	n int
	w int
}

// extractOpCodes turns annotated NA/OA arrays into the ordered opcode list.
// Both arrays satisfy the same contract regardless of which algorithm filled
// them: a cell is either an anchor holding the cross-sequence index, or
// unanchored.
func extractOpCodes(na, oa []cell, replaceMode bool) ([]OpCode, error) {
	equals, moves, moveds := moveAndEqualOpCodes(na)
	deletes := unanchoredOpCodes(na, TagDelete)
	inserts := unanchoredOpCodes(oa, TagInsert)

	result, err := mergeOpCodes(equals, moves, moveds, deletes, inserts)
	if err != nil {
		return nil, err
	}

	if replaceMode {
		result = foldReplaces(result)
	}

	return result, nil
}

// moveAndEqualOpCodes classifies anchored runs. The longest increasing
// subsequence over anchor values selects the anchors that keep their relative
// order in both sequences; runs of those become equal opcodes, all remaining
// anchored runs become move/moved pairs.
func moveAndEqualOpCodes(na []cell) (equals, moves, moveds []OpCode) {
	var pairs []anchorPair
	for i, c := range na {
		if c.anchor {
			pairs = append(pairs, anchorPair{idx: i, val: c.index})
		}
	}

	lisPairs := make([]anchorPair, 0, len(pairs))
	for _, e := range lis.Longest(pairs, func(p anchorPair) int { return p.val }, func(a, b int) bool { return a < b }) {
		lisPairs = append(lisPairs, e.Value)
	}

	// Runs where both coordinates advance by one compress into blocks.
	scanner := blocks.ConsecutiveVectors(func(p anchorPair) []int { return []int{p.idx, p.val} })
	allBlocks := opBlocks(scanner.Blocks(pairs), pairs)
	eqBlocks := opBlocks(scanner.Blocks(lisPairs), lisPairs)

	inEq := make(map[opBlock]struct{}, len(eqBlocks))
	for _, b := range eqBlocks {
		inEq[b] = struct{}{}
	}

	for _, b := range eqBlocks {
		equals = append(equals, OpCode{Tag: TagEqual, I1: b.i, I2: b.i + b.w, J1: b.n, J2: b.n + b.w})
	}

	for _, b := range allBlocks {
		if _, ok := inEq[b]; ok {
			continue
		}

		moves = append(moves, OpCode{Tag: TagMove, I1: b.i, I2: b.i + b.w, J1: b.n, J2: b.n})
		moveds = append(moveds, OpCode{Tag: TagMoved, I1: b.i, I2: b.i, J1: b.n, J2: b.n + b.w})
	}

	slices.SortFunc(moves, func(a, b OpCode) int { return cmp.Compare(a.I1, b.I1) })
	slices.SortFunc(moveds, func(a, b OpCode) int { return cmp.Compare(a.J1, b.J1) })

	return equals, moves, moveds
}

// opBlocks maps raw scanner blocks back to NA indexes and starting values.
func opBlocks(bs []blocks.Block, pairs []anchorPair) []opBlock {
	out := make([]opBlock, 0, len(bs))
	for _, b := range bs {
		out = append(out, opBlock{i: pairs[b.Start].idx, n: pairs[b.Start].val, w: b.Len})
	}

	return out
}

// unanchoredOpCodes emits one opcode per run of unanchored cells. Only the
// range on the opcode's own side is meaningful here; the other side is
// filled in with the running cursor during the merge.
func unanchoredOpCodes(cells []cell, tag Tag) []OpCode {
	var out []OpCode

	for _, b := range blocks.Matching(func(c cell) bool { return !c.anchor }).Blocks(cells) {
		op := OpCode{Tag: tag}
		if tag == TagDelete {
			op.I1, op.I2 = b.Start, b.Start+b.Len
		} else {
			op.J1, op.J2 = b.Start, b.Start+b.Len
		}

		out = append(out, op)
	}

	return out
}

// mergeOpCodes interleaves the per-tag opcode queues into one ordered list,
// walking a cursor over each sequence. Deletes and moves advance the a-side
// cursor, inserts and moved targets the b-side, equal runs both.
func mergeOpCodes(equals, moves, moveds, deletes, inserts []OpCode) ([]OpCode, error) {
	total := len(equals) + len(moves) + len(moveds) + len(deletes) + len(inserts)
	result := make([]OpCode, 0, total)

	var ipos, jpos int

	for len(result) < total {
		switch {
		case len(deletes) > 0 && deletes[0].I1 == ipos:
			op := deletes[0]
			deletes = deletes[1:]
			// The j range is meaningless for a delete; pinning it to the
			// cursor keeps j indexes in sync across the returned list.
			result = append(result, OpCode{Tag: op.Tag, I1: op.I1, I2: op.I2, J1: jpos, J2: jpos})
			ipos = op.I2

		case len(moves) > 0 && moves[0].I1 == ipos:
			op := moves[0]
			moves = moves[1:]
			result = append(result, op)
			ipos = op.I2

		case len(equals) > 0 && equals[0].I1 == ipos && equals[0].J1 == jpos:
			op := equals[0]
			equals = equals[1:]
			result = append(result, op)
			ipos = op.I2
			jpos = op.J2

		case len(inserts) > 0 && inserts[0].J1 == jpos:
			op := inserts[0]
			inserts = inserts[1:]
			result = append(result, OpCode{Tag: op.Tag, I1: ipos, I2: ipos, J1: op.J1, J2: op.J2})
			jpos = op.J2

		case len(moveds) > 0 && moveds[0].J1 == jpos:
			op := moveds[0]
			moveds = moveds[1:]
			result = append(result, op)
			jpos = op.J2

		default:
			return nil, ErrOpcodeExtraction
		}
	}

	return result, nil
}

// foldReplaces merges every delete immediately followed by an insert into a
// single replace opcode. Purely syntactic; nothing is reordered.
func foldReplaces(ops []OpCode) []OpCode {
	scanner := blocks.New(
		func(_ OpCode, _ bool, curr OpCode) bool { return curr.Tag == TagDelete },
		func(_, curr OpCode) blocks.Action {
			if curr.Tag == TagInsert {
				return blocks.EmitWithCurrent
			}

			return blocks.Drop
		},
		blocks.WithoutTrailing[OpCode](),
	)

	pairs := scanner.Blocks(ops)
	if len(pairs) == 0 {
		return ops
	}

	result := make([]OpCode, 0, len(ops)-len(pairs))
	next := 0

	for i := 0; i < len(ops); {
		if next < len(pairs) && pairs[next].Start == i {
			del, ins := ops[i], ops[i+1]
			result = append(result, OpCode{Tag: TagReplace, I1: del.I1, I2: del.I2, J1: ins.J1, J2: ins.J2})
			next++
			i += 2

			continue
		}

		result = append(result, ops[i])
		i++
	}

	return result
}
