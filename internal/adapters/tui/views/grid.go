package views

// Grid tracks a cursor over cards laid out row by row and split into pages
// of cols*rows cards
type Grid struct {
	cursor int
	total  int
	cols   int
	rows   int
}

// NewGrid creates a single-card grid
func NewGrid() *Grid {
	return &Grid{cols: 1, rows: 1}
}

// SetLayout updates the number of columns and rows per page
func (g *Grid) SetLayout(cols, rows int) {
	g.cols = max(cols, 1)
	g.rows = max(rows, 1)
}

// SetTotal updates the card count and clamps the cursor
func (g *Grid) SetTotal(total int) {
	g.total = max(total, 0)
	g.SetCursor(g.cursor)
}

// Total returns the card count
func (g *Grid) Total() int {
	return g.total
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Cursor returns the selected card index
func (g *Grid) Cursor() int {
	return g.cursor
}

// SetCursor moves the cursor, clamped to the valid range
func (g *Grid) SetCursor(pos int) {
	if g.total == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(pos, 0), g.total-1)
}

// PageSize returns the number of cards per page
func (g *Grid) PageSize() int {
	return g.cols * g.rows
}

// Page returns the zero-based page holding the cursor
func (g *Grid) Page() int {
	return g.cursor / g.PageSize()
}

// PageCount returns the number of pages, at least 1
func (g *Grid) PageCount() int {
	if g.total == 0 {
		return 1
	}
	return (g.total + g.PageSize() - 1) / g.PageSize()
}

// VisibleRange returns the [start, end) card indices of the cursor's page
func (g *Grid) VisibleRange() (start, end int) {
	start = g.Page() * g.PageSize()
	end = min(start+g.PageSize(), g.total)
	return start, end
}

// Left moves one card back
func (g *Grid) Left() {
	g.SetCursor(g.cursor - 1)
}

// Right moves one card forward
func (g *Grid) Right() {
	g.SetCursor(g.cursor + 1)
}

// Up moves one row up, staying put on the first row
func (g *Grid) Up() {
	if g.cursor-g.cols >= 0 {
		g.cursor -= g.cols
	}
}

// Down moves one row down, landing on the last card when the row below is short
func (g *Grid) Down() {
	next := g.cursor + g.cols
	if next < g.total {
		g.cursor = next
		return
	}
	if g.cursor/g.cols < (g.total-1)/g.cols {
		g.cursor = g.total - 1
	}
}
