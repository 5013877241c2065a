// Package diffviewport provides a Bubble Tea component for viewing rendered
// diffs between text revisions.
//
// The model keeps a history of revisions. Navigating to a revision shows the
// side-by-side diff against its predecessor, rendered with an
// [mdiff.Printer]; the first revision is shown as-is. Output wider or taller
// than the window scrolls in both directions.
package diffviewport

import (
	"cmp"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/mdiff"
)

const defaultHorizontalStep = 6

// Option is a configuration option that works in conjunction with [New].
type Option func(*Model)

// WithPrinter sets the [mdiff.Printer] used for rendering.
// If not set, a default printer is created.
func WithPrinter(p *mdiff.Printer) Option {
	return func(m *Model) {
		m.printer = p
	}
}

// WithDiffOptions sets the [mdiff.Option]s applied when diffing adjacent
// revisions.
func WithDiffOptions(opts ...mdiff.Option) Option {
	return func(m *Model) {
		m.diffOpts = opts
	}
}

// WithStyle sets the container style for the viewport.
//
//nolint:gocritic // hugeParam: Copying.
func WithStyle(s lipgloss.Style) Option {
	return func(m *Model) {
		m.Style = s
	}
}

// New returns a new model with the given options.
func New(opts ...Option) Model {
	m := Model{
		KeyMap:          DefaultKeyMap(),
		MouseWheelDelta: 3,
		horizontalStep:  defaultHorizontalStep,
	}

	for _, opt := range opts {
		opt(&m)
	}

	if m.printer == nil {
		m.printer = mdiff.NewPrinter()
	}

	return m
}

// Model is the Bubble Tea model for the diff viewport.
//
//nolint:recvcheck // tea.Model requires value receivers for Init, Update, View.
type Model struct {
	Style             lipgloss.Style
	KeyMap            KeyMap
	printer           *mdiff.Printer
	diffOpts          []mdiff.Option
	revisions         []string
	lines             []string
	renderErr         error
	xOffset           int
	yOffset           int
	width             int
	height            int
	horizontalStep    int
	longestLineWidth  int
	revisionIndex     int
	MouseWheelDelta   int
	MouseWheelEnabled bool
}

// Init satisfies the [tea.Model] interface.
//
//nolint:gocritic // hugeParam: required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Height returns the height of the viewport.
func (m *Model) Height() int { return m.height }

// SetHeight sets the height of the viewport.
func (m *Model) SetHeight(h int) { m.height = h }

// Width returns the width of the viewport.
func (m *Model) Width() int { return m.width }

// SetWidth sets the width of the viewport.
func (m *Model) SetWidth(w int) { m.width = w }

// Err returns the error of the last render, if any. Rendering fails on
// invalid diff options, such as a cutoff outside [0.0, 1.0], and on matcher
// errors.
func (m *Model) Err() error { return m.renderErr }

// SetRevisions replaces the revision history. The revision index moves to
// the latest revision, showing its diff against the predecessor. Pass
// nothing to clear all content.
func (m *Model) SetRevisions(revisions ...string) {
	m.revisions = revisions
	m.revisionIndex = max(0, len(revisions)-1)
	m.rerender()
	m.GotoTop()
}

// AppendRevision adds a new revision to the history and navigates to it.
func (m *Model) AppendRevision(revision string) {
	m.revisions = append(m.revisions, revision)
	m.revisionIndex = len(m.revisions) - 1
	m.rerender()
	m.GotoTop()
}

// RevisionCount returns the number of revisions in the history.
func (m *Model) RevisionCount() int { return len(m.revisions) }

// RevisionIndex returns the current revision index.
func (m *Model) RevisionIndex() int { return m.revisionIndex }

// NextRevision moves to the next revision in history.
func (m *Model) NextRevision() {
	if m.revisionIndex < len(m.revisions)-1 {
		m.revisionIndex++
		m.rerender()
		m.GotoTop()
	}
}

// PrevRevision moves to the previous revision in history.
func (m *Model) PrevRevision() {
	if m.revisionIndex > 0 {
		m.revisionIndex--
		m.rerender()
		m.GotoTop()
	}
}

// rerender renders the current revision: a diff against its predecessor, or
// the revision itself when it is the first.
func (m *Model) rerender() {
	m.lines = nil
	m.longestLineWidth = 0
	m.renderErr = nil

	if len(m.revisions) == 0 {
		return
	}

	var content string

	if m.revisionIndex == 0 {
		content = m.revisions[0]
	} else {
		before := m.revisions[m.revisionIndex-1]
		after := m.revisions[m.revisionIndex]

		d, err := mdiff.DiffLines(before, after, m.diffOpts...)
		if err != nil {
			m.renderErr = err

			return
		}

		content = m.printer.Render(d)
	}

	m.lines = strings.Split(content, "\n")
	for _, line := range m.lines {
		m.longestLineWidth = max(m.longestLineWidth, ansi.StringWidth(line))
	}
}

// AtTop returns whether the viewport is at the top.
func (m *Model) AtTop() bool { return m.yOffset <= 0 }

// AtBottom returns whether the viewport is at or past the bottom.
func (m *Model) AtBottom() bool { return m.yOffset >= m.maxYOffset() }

func (m *Model) maxYOffset() int {
	return max(0, len(m.lines)-m.maxHeight())
}

func (m *Model) maxXOffset() int {
	return max(0, m.longestLineWidth-m.maxWidth())
}

func (m *Model) maxWidth() int {
	return max(0, m.width-m.Style.GetHorizontalFrameSize())
}

func (m *Model) maxHeight() int {
	return max(0, m.height-m.Style.GetVerticalFrameSize())
}

// SetYOffset sets the Y offset, clamped to the valid range.
func (m *Model) SetYOffset(n int) {
	m.yOffset = clamp(n, 0, m.maxYOffset())
}

// SetXOffset sets the X offset, clamped to the valid range.
func (m *Model) SetXOffset(n int) {
	m.xOffset = clamp(n, 0, m.maxXOffset())
}

// ScrollDown moves the view down by n lines.
func (m *Model) ScrollDown(n int) {
	m.SetYOffset(m.yOffset + n)
}

// ScrollUp moves the view up by n lines.
func (m *Model) ScrollUp(n int) {
	m.SetYOffset(m.yOffset - n)
}

// ScrollLeft moves the view left by n columns.
func (m *Model) ScrollLeft(n int) {
	m.SetXOffset(m.xOffset - n)
}

// ScrollRight moves the view right by n columns.
func (m *Model) ScrollRight(n int) {
	m.SetXOffset(m.xOffset + n)
}

// GotoTop scrolls to the top.
func (m *Model) GotoTop() {
	m.SetYOffset(0)
}

// GotoBottom scrolls to the bottom.
func (m *Model) GotoBottom() {
	m.SetYOffset(m.maxYOffset())
}

// TotalLineCount returns the total number of rendered lines.
func (m *Model) TotalLineCount() int { return len(m.lines) }

// visibleLines returns the window of lines currently in view, cut to the
// horizontal scroll position.
func (m *Model) visibleLines() []string {
	maxHeight := m.maxHeight()
	maxWidth := m.maxWidth()

	if maxHeight == 0 || maxWidth == 0 || len(m.lines) == 0 {
		return nil
	}

	start := clamp(m.yOffset, 0, max(0, len(m.lines)-1))
	end := min(start+maxHeight, len(m.lines))

	lines := make([]string, end-start)
	copy(lines, m.lines[start:end])

	if m.xOffset > 0 || m.longestLineWidth > maxWidth {
		for i := range lines {
			lines[i] = ansi.Cut(lines[i], m.xOffset, m.xOffset+maxWidth)
		}
	}

	return lines
}

// Update satisfies the [tea.Model] interface.
//
//nolint:gocritic // hugeParam: required by tea.Model interface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.KeyMap.PageDown):
			m.ScrollDown(m.maxHeight())
		case key.Matches(msg, m.KeyMap.PageUp):
			m.ScrollUp(m.maxHeight())
		case key.Matches(msg, m.KeyMap.HalfPageDown):
			m.ScrollDown(m.maxHeight() / 2) //nolint:mnd // Half page.
		case key.Matches(msg, m.KeyMap.HalfPageUp):
			m.ScrollUp(m.maxHeight() / 2) //nolint:mnd // Half page.
		case key.Matches(msg, m.KeyMap.Down):
			m.ScrollDown(1)
		case key.Matches(msg, m.KeyMap.Up):
			m.ScrollUp(1)
		case key.Matches(msg, m.KeyMap.Left):
			m.ScrollLeft(m.horizontalStep)
		case key.Matches(msg, m.KeyMap.Right):
			m.ScrollRight(m.horizontalStep)
		case key.Matches(msg, m.KeyMap.NextRevision):
			m.NextRevision()
		case key.Matches(msg, m.KeyMap.PrevRevision):
			m.PrevRevision()
		}

	case tea.MouseWheelMsg:
		if m.MouseWheelEnabled {
			switch msg.Button {
			case tea.MouseWheelDown:
				m.ScrollDown(m.MouseWheelDelta)
			case tea.MouseWheelUp:
				m.ScrollUp(m.MouseWheelDelta)
			}
		}
	}

	return m, nil
}

// View satisfies the [tea.Model] interface.
//
//nolint:gocritic // hugeParam: required by tea.Model interface.
func (m Model) View() string {
	return m.Style.Render(strings.Join(m.visibleLines(), "\n"))
}

func clamp[T cmp.Ordered](v, low, high T) T {
	return max(low, min(high, v))
}
