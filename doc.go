// Package mdiff computes move-aware diffs between texts.
//
// Classical diff algorithms report a relocated block twice, as a delete at
// its old position and an insert at its new one. The matchers in
// [go.jacobcolvin.com/mdiff/seqmatch] instead classify reordered runs as
// move/moved opcode pairs, which keeps block displacement visible in the
// output.
//
// This package builds the text layer on top of the matchers: [DiffLines]
// splits two inputs into lines, diffs the line sequences, and refines each
// replaced region by searching for similar line pairs and diffing those on
// the character level. The result is a [Diff] of [CompositeOpCode] values,
// where a refined replace carries the character-level opcodes of its line
// pair as children.
//
//	d, err := mdiff.DiffLines(before, after)
//	if err != nil {
//		// Only configuration errors and matcher failures surface here.
//	}
//	out := mdiff.NewPrinter().Render(d)
//
// Rendering is handled by [Printer], which produces a side-by-side view
// styled per opcode tag. The bubbles/diffviewport package wraps the rendered
// output in a scrollable Bubble Tea component.
package mdiff
