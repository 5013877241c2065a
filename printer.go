package mdiff

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/mdiff/internal/ansi"
	"go.jacobcolvin.com/mdiff/internal/colors"
	"go.jacobcolvin.com/mdiff/seqmatch"
	"go.jacobcolvin.com/mdiff/style"
)

// Printer renders a [Diff] as a side-by-side view: both inputs next to each
// other, each line prefixed with its line number and an operation marker,
// styled by opcode tag. Refined replace lines additionally highlight the
// changed character runs using their children opcodes.
//
// Create instances with [NewPrinter].
type Printer struct {
	styles style.Styles
	chars  Charset
	margin int
}

// PrinterOption is a configuration option that works in conjunction with
// [NewPrinter].
type PrinterOption func(*Printer)

// WithStyles sets the styles used for rendering.
// The default is [style.Default] in dark mode; use [style.Plain] for
// uncolored output.
func WithStyles(s style.Styles) PrinterOption {
	return func(p *Printer) {
		p.styles = s
	}
}

// WithCharset sets the glyphs used for rendering.
// The default is [UnicodeCharset].
func WithCharset(c Charset) PrinterOption {
	return func(p *Printer) {
		p.chars = c
	}
}

// WithMargin sets the number of spaces between the longest line of a side
// and the next column.
func WithMargin(margin int) PrinterOption {
	return func(p *Printer) {
		p.margin = margin
	}
}

// NewPrinter returns a new [*Printer] with the given options.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{
		styles: style.Default(style.Dark),
		chars:  UnicodeCharset(),
		margin: 3,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Fprint renders d to w.
func (p *Printer) Fprint(w io.Writer, d *Diff) error {
	_, err := io.WriteString(w, p.Render(d))
	if err != nil {
		return fmt.Errorf("write diff: %w", err)
	}

	return nil
}

// Render returns the side-by-side rendering of d. Rows are joined with
// newlines, without a trailing one.
func (p *Printer) Render(d *Diff) string {
	layout := newLayout(d, p.margin)

	var rows []string
	for _, op := range d.OpCodes {
		rows = append(rows, p.opRows(layout, d, op)...)
	}

	return strings.Join(rows, "\n")
}

// layout holds the computed column dimensions of one rendering.
type layout struct {
	aWidth, bWidth int
	aNum, bNum     int
}

func newLayout(d *Diff, margin int) layout {
	return layout{
		aWidth: longestWidth(d.ALines) + margin,
		bWidth: longestWidth(d.BLines) + margin,
		aNum:   digits(len(d.ALines)),
		bNum:   digits(len(d.BLines)),
	}
}

// opRows renders all rows of one opcode. Tags placed on one side render the
// other side as filler; replace rectangles pair their rows up to the longer
// side.
func (p *Printer) opRows(l layout, d *Diff, op CompositeOpCode) []string {
	var rows []string

	aRange := d.ALines[op.I1:op.I2]
	bRange := d.BLines[op.J1:op.J2]

	switch op.Tag {
	case seqmatch.TagEqual, seqmatch.TagReplace:
		for k := range max(len(aRange), len(bRange)) {
			var left, right string

			if k < len(aRange) {
				left = p.cell(l.aNum, l.aWidth, op.I1+k+1, sideA, op, aRange[k])
			} else {
				left = p.fillerCell(l.aNum, l.aWidth)
			}

			if k < len(bRange) {
				right = p.cell(l.bNum, l.bWidth, op.J1+k+1, sideB, op, bRange[k])
			} else {
				right = p.fillerCell(l.bNum, l.bWidth)
			}

			rows = append(rows, left+right)
		}

	case seqmatch.TagDelete, seqmatch.TagMove:
		for k, line := range aRange {
			left := p.cell(l.aNum, l.aWidth, op.I1+k+1, sideA, op, line)
			rows = append(rows, left+p.fillerCell(l.bNum, l.bWidth))
		}

	case seqmatch.TagInsert, seqmatch.TagMoved:
		for k, line := range bRange {
			right := p.cell(l.bNum, l.bWidth, op.J1+k+1, sideB, op, line)
			rows = append(rows, p.fillerCell(l.aNum, l.aWidth)+right)
		}
	}

	return rows
}

type side byte

const (
	sideA side = 'a'
	sideB side = 'b'
)

// ownTags reports whether tag marks changed content on this side. Tags of
// the other side render with the neutral equal style.
func (s side) ownTags(tag seqmatch.Tag) bool {
	if s == sideA {
		return tag == seqmatch.TagDelete || tag == seqmatch.TagMove || tag == seqmatch.TagReplace
	}

	return tag == seqmatch.TagInsert || tag == seqmatch.TagMoved || tag == seqmatch.TagReplace
}

// cell renders one side of a row: separator, line number, operation marker,
// separator, and the padded line content.
func (p *Printer) cell(numW, colW, lineNum int, s side, op CompositeOpCode, line string) string {
	tag := op.Tag
	// An unrefined replace renders as a delete on the a side and an insert
	// on the b side.
	if tag == seqmatch.TagReplace && len(op.Children) == 0 {
		if s == sideA {
			tag = seqmatch.TagDelete
		} else {
			tag = seqmatch.TagInsert
		}
	}

	label := p.label(fmt.Sprintf("%*d", numW, lineNum), p.chars.opChar(tag, len(op.Children) > 0), tag)

	return label + p.content(colW, s, tag, op.Children, line)
}

// fillerCell renders one side of a row that has no line on this side.
func (p *Printer) fillerCell(numW, colW int) string {
	label := p.label(strings.Repeat(" ", numW), " ", seqmatch.TagEqual)

	return label + p.styles.Filler.Render(strings.Repeat(p.chars.Fill, colW))
}

func (p *Printer) label(num, opChar string, tag seqmatch.Tag) string {
	sep := p.styles.Separator.Render(p.chars.Separator)
	labelStyle := colors.OverrideStyles(p.styles.LineNumber, p.styles.Line(tag))

	return sep + " " + labelStyle.Render(num+opChar) + sep
}

// content renders the line content padded to the column width. Children
// opcodes split the line into runs styled individually.
func (p *Printer) content(colW int, s side, tag seqmatch.Tag, children []seqmatch.OpCode, line string) string {
	lineStyle := lipgloss.NewStyle()
	if s.ownTags(tag) {
		lineStyle = p.styles.Line(tag)
	}

	sanitized := ansi.Sanitize(line)
	padding := strings.Repeat(" ", max(0, colW-xansi.StringWidth(sanitized)))

	if len(children) == 0 {
		return lineStyle.Render(sanitized) + padding
	}

	cs := chars(line)

	var sb strings.Builder

	for _, child := range children {
		lo, hi := child.J1, child.J2
		if s == sideA {
			lo, hi = child.I1, child.I2
		}

		segment := ansi.Sanitize(strings.Join(cs[lo:hi], ""))
		if s.ownTags(child.Tag) {
			sb.WriteString(p.styles.Inline(child.Tag).Render(segment))
		} else {
			sb.WriteString(lineStyle.Render(segment))
		}
	}

	return sb.String() + padding
}

func longestWidth(lines []string) int {
	longest := 0
	for _, l := range lines {
		longest = max(longest, xansi.StringWidth(ansi.Sanitize(l)))
	}

	return longest
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}
