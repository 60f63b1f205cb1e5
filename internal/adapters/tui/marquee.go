package tui

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"memoflow/internal/adapters/tui/styles"
	"memoflow/internal/flow"
)

// Marquee is the terminal flow.Surface: a strip of lanes one cell high whose
// extent is the terminal width in cells. Comments are assigned to lanes in
// turn and drawn at their position for the current frame time.
type Marquee struct {
	width    int
	lanes    int
	now      time.Time
	next     flow.Handle
	nextLane int
	entities map[flow.Handle]*marqueeEntity
}

type marqueeEntity struct {
	text   string
	lane   int
	at     float64
	motion *flow.Motion
}

// Ensure Marquee implements flow.Surface
var _ flow.Surface = (*Marquee)(nil)

// NewMarquee creates a marquee with the given number of lanes
func NewMarquee(lanes int) *Marquee {
	return &Marquee{
		lanes:    max(lanes, 1),
		entities: make(map[flow.Handle]*marqueeEntity),
	}
}

// SetWidth updates the viewport extent
func (m *Marquee) SetWidth(width int) {
	m.width = max(width, 0)
}

// SetNow sets the frame time used for rendering
func (m *Marquee) SetNow(t time.Time) {
	m.now = t
}

// Lanes returns the strip height in rows
func (m *Marquee) Lanes() int {
	return m.lanes
}

// Len returns the number of attached comments
func (m *Marquee) Len() int {
	return len(m.entities)
}

// Extent returns the terminal width in cells
func (m *Marquee) Extent() float64 {
	return float64(m.width)
}

// Attach places text at rest on the next lane
func (m *Marquee) Attach(text string, at float64) (flow.Handle, error) {
	if m.width <= 0 {
		return 0, flow.ErrNoViewport
	}
	m.next++
	m.entities[m.next] = &marqueeEntity{
		text: text,
		lane: m.nextLane,
		at:   at,
	}
	m.nextLane = (m.nextLane + 1) % m.lanes
	return m.next, nil
}

// Measure returns the display width of an attached comment in cells
func (m *Marquee) Measure(h flow.Handle) (float64, error) {
	e, ok := m.entities[h]
	if !ok {
		return 0, flow.ErrNotAttached
	}
	return float64(runewidth.StringWidth(e.text)), nil
}

// Animate commits the comment's motion
func (m *Marquee) Animate(h flow.Handle, motion flow.Motion) error {
	e, ok := m.entities[h]
	if !ok {
		return flow.ErrNotAttached
	}
	e.motion = &motion
	return nil
}

// Detach removes a comment
func (m *Marquee) Detach(h flow.Handle) {
	delete(m.entities, h)
}

// position returns the comment's column at the current frame
func (m *Marquee) position(e *marqueeEntity) int {
	pos := e.at
	if e.motion != nil {
		pos = e.motion.Position(m.now)
	}
	return int(math.Round(pos))
}

// View renders every lane with the marquee style
func (m *Marquee) View() string {
	lines := m.lines()
	for i, line := range lines {
		lines[i] = styles.Marquee.Render(line)
	}
	return strings.Join(lines, "\n")
}

// lines draws each lane as plain text exactly width cells wide.
// Newer comments draw over older ones.
func (m *Marquee) lines() []string {
	if m.width <= 0 {
		return nil
	}

	canvases := make([][]rune, m.lanes)
	for i := range canvases {
		canvases[i] = []rune(strings.Repeat(" ", m.width))
	}

	handles := make([]flow.Handle, 0, len(m.entities))
	for h := range m.entities {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	for _, h := range handles {
		e := m.entities[h]
		draw(canvases[e.lane], m.position(e), e.text)
	}

	lines := make([]string, m.lanes)
	for i, canvas := range canvases {
		lines[i] = renderCanvas(canvas)
	}
	return lines
}

// continuation marks the right half of a double-width rune on a canvas
const continuation rune = 0

// draw writes text into canvas starting at column col, clipping at both edges.
// A double-width rune that is only half visible is drawn as a space.
func draw(canvas []rune, col int, text string) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= len(canvas) {
			return
		}
		if col >= 0 && col+w <= len(canvas) {
			put(canvas, col, r, w)
		} else {
			for c := max(col, 0); c < min(col+w, len(canvas)); c++ {
				put(canvas, c, ' ', 1)
			}
		}
		col += w
	}
}

// put writes r over w cells, blanking any wide rune it splits
func put(canvas []rune, col int, r rune, w int) {
	if canvas[col] == continuation && col > 0 {
		canvas[col-1] = ' '
	}
	canvas[col] = r
	for i := 1; i < w; i++ {
		canvas[col+i] = continuation
	}
	if end := col + w; end < len(canvas) && canvas[end] == continuation {
		canvas[end] = ' '
	}
}

func renderCanvas(canvas []rune) string {
	var b strings.Builder
	for _, r := range canvas {
		if r != continuation {
			b.WriteRune(r)
		}
	}
	return b.String()
}
