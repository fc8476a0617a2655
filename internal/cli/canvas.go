package cli

import (
	"sort"
	"strings"

	"github.com/matzehuels/blockboard/pkg/board"
)

// Border rune sets for the two visual families: single-line for ordinary
// blocks and bracket markers, double-line for Flow containers.
type borderSet struct {
	tl, tr, bl, br, h, v rune
}

var (
	blockBorder = borderSet{'┌', '┐', '└', '┘', '─', '│'}
	flowBorder  = borderSet{'╔', '╗', '╚', '╝', '═', '║'}
)

// renderCanvas paints the store onto a rune grid: blocks in ascending
// z-order so later paints win, then wires, then the pointer. The grid is a
// pure projection of editor state; nothing here mutates.
func (m canvasModel) renderCanvas() string {
	cols := m.width
	rows := m.height - 3
	if cols < 20 {
		cols = 20
	}
	if rows < 10 {
		rows = 10
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	hovered := m.ctl.HoveredContainer()

	blocks := m.ctl.Blocks()
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].ZOrder < blocks[j].ZOrder })
	for _, b := range blocks {
		m.paintBlock(grid, b, b.ID == hovered)
	}
	m.paintWires(grid)
	m.paintCursor(grid)

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return styleCanvasBorder.Render(strings.Join(lines, "\n"))
}

// cellRect converts a block's absolute pixel bounds into grid cells.
func (m canvasModel) cellRect(bounds board.Rect) (x, y, w, h int) {
	x = int(bounds.X / m.cfg.Canvas.CellWidth)
	y = int(bounds.Y / m.cfg.Canvas.CellHeight)
	w = int(bounds.W / m.cfg.Canvas.CellWidth)
	h = int(bounds.H / m.cfg.Canvas.CellHeight)
	if w < 4 {
		w = 4
	}
	if h < 2 {
		h = 2
	}
	return x, y, w, h
}

func (m canvasModel) paintBlock(grid [][]rune, b *board.Block, hovered bool) {
	bounds := m.ctl.Store().AbsoluteBounds(b)
	x, y, w, h := m.cellRect(bounds)

	border := blockBorder
	if b.Type == board.TypeFlow {
		border = flowBorder
	}

	set := func(r, c int, ch rune) {
		if r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) {
			grid[r][c] = ch
		}
	}

	for c := x; c <= x+w; c++ {
		set(y, c, border.h)
		set(y+h, c, border.h)
	}
	for r := y; r <= y+h; r++ {
		set(r, x, border.v)
		set(r, x+w, border.v)
	}
	set(y, x, border.tl)
	set(y, x+w, border.tr)
	set(y+h, x, border.bl)
	set(y+h, x+w, border.br)

	// Clear and optionally dot the interior so underlying paint never
	// bleeds through; hovered Flows get a visible fill.
	fill := ' '
	if hovered {
		fill = '·'
	}
	for r := y + 1; r < y+h; r++ {
		for c := x + 1; c < x+w; c++ {
			set(r, c, fill)
		}
	}

	title := []rune(b.Title)
	if len(title) > w-1 {
		title = title[:w-1]
	}
	for i, ch := range title {
		set(y+1, x+1+i, ch)
	}
}

// paintWires draws each connection as a vertical run from the source's
// bottom anchor toward the target's top anchor, with an arrowhead at the
// target end.
func (m canvasModel) paintWires(grid [][]rune) {
	store := m.ctl.Store()
	for _, conn := range m.ctl.Connections() {
		from := store.Block(conn.From)
		to := store.Block(conn.To)
		if from == nil || to == nil {
			continue
		}
		a := store.BottomAnchorPoint(from)
		b := store.TopAnchorPoint(to)

		col := int(a.X / m.cfg.Canvas.CellWidth)
		r0 := int(a.Y / m.cfg.Canvas.CellHeight)
		r1 := int(b.Y / m.cfg.Canvas.CellHeight)
		if r1 < r0 {
			r0, r1 = r1, r0
			col = int(b.X / m.cfg.Canvas.CellWidth)
		}
		for r := r0 + 1; r < r1; r++ {
			if r >= 0 && r < len(grid) && col >= 0 && col < len(grid[r]) && grid[r][col] == ' ' {
				grid[r][col] = '│'
			}
		}
		if r1 > r0 && r1-1 >= 0 && r1-1 < len(grid) && col >= 0 && col < len(grid[r1-1]) && grid[r1-1][col] == '│' {
			grid[r1-1][col] = '▼'
		}
	}
}

func (m canvasModel) paintCursor(grid [][]rune) {
	c := int(m.cursor.X / m.cfg.Canvas.CellWidth)
	r := int(m.cursor.Y / m.cfg.Canvas.CellHeight)
	if r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) {
		grid[r][c] = '✛'
	}
}
