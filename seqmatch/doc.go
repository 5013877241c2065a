// Package seqmatch compares pairs of sequences and reports the differences
// between them as opcodes.
//
// Unlike a classical Myers-style matcher, the matchers in this package detect
// displaced runs: elements that exist in both sequences but changed their
// relative position are reported as a move/moved opcode pair instead of being
// hidden behind a delete and an insert.
//
// # Matchers
//
// Three implementations of [Matcher] are provided:
//
//   - [Heckel]: five-pass symbol table annotation after Paul Heckel's
//     "A Technique for Isolating Differences Between Files" (1978). Fast and
//     usually the right default, but a heuristic: it anchors only uniquely
//     occurring elements and grows runs from there, so sequences consisting
//     mostly of duplicates can degrade to delete/insert pairs.
//   - [Displacement]: tracks every occurrence of every element and pairs them
//     greedily in textual order. Finds displacements the Heckel variant
//     misses on duplicate-rich inputs, at the cost of sometimes splitting
//     coherent blocks.
//   - [Standard]: a classical matcher without move detection, backed by
//     [github.com/pmezard/go-difflib/difflib]. It also exposes the similarity
//     ratios used for inline refinement, see [RatioMatcher].
//
// # Opcodes
//
// [Matcher.GetOpCodes] returns an ordered [OpCode] list covering both input
// sequences exactly. Each opcode carries one of six tags; deletes and moves
// appear at their position in the first sequence, inserts and moved targets
// at their position in the second. Consumers can walk the list with two
// cursors that advance exclusively on their respective tags.
package seqmatch
