package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/config"
	"github.com/matzehuels/blockboard/pkg/editor"
)

// pickable lists the block types the picker offers. End markers are not
// creatable directly; they appear with their bracket pair.
var pickable = []board.BlockType{
	board.TypeAction,
	board.TypeTable,
	board.TypeStart,
	board.TypeEnd,
	board.TypeSwitch,
	board.TypeCollection,
	board.TypeFlow,
}

// canvasModel is the bubbletea model for the interactive canvas. It owns no
// graph state: every mutation goes through the editor controller, and the
// view re-reads the store each frame. The keyboard cursor plays the pointer.
type canvasModel struct {
	ctl *editor.Controller
	cfg config.Config

	cursor  board.Point // pointer position, canvas pixels
	pressed bool        // space toggles press/release

	picking   bool
	pickIndex int

	width  int // terminal columns
	height int // terminal rows
	status string
}

// newCanvasModel creates the canvas over an editor controller.
func newCanvasModel(ctl *editor.Controller, cfg config.Config) canvasModel {
	return canvasModel{
		ctl:    ctl,
		cfg:    cfg,
		cursor: board.Point{X: 100, Y: 100},
		width:  80,
		height: 24,
		status: "n: new block   space: drag   c: anchor   d: delete   x: cut wire   q: quit",
	}
}

func (m canvasModel) Init() tea.Cmd { return nil }

func (m canvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateCanvas(msg)
	}
	return m, nil
}

func (m canvasModel) updateCanvas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.Canvas.CursorStep
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up":
		m.moveCursor(0, -step)
	case "down":
		m.moveCursor(0, step)
	case "left":
		m.moveCursor(-step, 0)
	case "right":
		m.moveCursor(step, 0)
	case "shift+up":
		m.moveCursor(0, -4*step)
	case "shift+down":
		m.moveCursor(0, 4*step)
	case "shift+left":
		m.moveCursor(-4*step, 0)
	case "shift+right":
		m.moveCursor(4*step, 0)
	case " ":
		m.togglePress()
	case "n":
		if !m.pressed {
			m.picking = true
			m.pickIndex = 0
		}
	case "c":
		if id, anchor := m.anchorUnderCursor(); id != "" {
			m.ctl.ClickAnchor(id, anchor)
			m.refreshStatus()
		}
	case "d":
		if id := m.blockUnderCursor(); id != "" {
			m.ctl.DeleteBlock(id)
			m.pressed = false
			m.status = "deleted block"
		}
	case "x":
		if i := m.wireNearCursor(); i >= 0 {
			m.ctl.RemoveConnection(i)
			m.status = "cut wire"
		}
	}
	return m, nil
}

func (m *canvasModel) moveCursor(dx, dy float64) {
	m.cursor.X = math.Max(0, m.cursor.X+dx)
	m.cursor.Y = math.Max(0, m.cursor.Y+dy)
	if m.pressed {
		m.ctl.UpdateDrag(m.cursor)
		if hv := m.ctl.HoveredContainer(); hv != "" {
			m.status = "over flow - release to reparent"
			return
		}
	}
	m.refreshStatus()
}

func (m *canvasModel) togglePress() {
	if m.pressed {
		m.ctl.EndDrag()
		m.pressed = false
		m.refreshStatus()
		return
	}
	id := m.blockUnderCursor()
	if id == "" {
		m.status = "nothing under pointer"
		return
	}
	m.ctl.BeginDrag(id, m.cursor)
	// A press while a connection is armed may have completed it instead
	// of starting a drag.
	m.pressed = m.ctl.State() == editor.StateDragging
	m.refreshStatus()
}

func (m *canvasModel) refreshStatus() {
	switch m.ctl.State() {
	case editor.StateDragging:
		m.status = "dragging - space to release"
	case editor.StateConnecting:
		src, _ := m.ctl.Connecting()
		if b := m.ctl.Store().Block(src); b != nil {
			m.status = fmt.Sprintf("connecting from %s - c on a top anchor to link", b.Title)
		}
	default:
		m.status = "n: new block   space: drag   c: anchor   d: delete   x: cut wire   q: quit"
	}
}

func (m canvasModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.picking = false
	case "up", "k":
		if m.pickIndex > 0 {
			m.pickIndex--
		}
	case "down", "j":
		if m.pickIndex < len(pickable)-1 {
			m.pickIndex++
		}
	case "enter":
		t := pickable[m.pickIndex]
		id := m.ctl.CreateBlock(t, m.cursor)
		m.picking = false
		if id != "" {
			m.status = fmt.Sprintf("created %s", t)
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// blockUnderCursor returns the topmost block whose bounds contain the
// pointer, by z-order.
func (m canvasModel) blockUnderCursor() string {
	store := m.ctl.Store()
	blocks := m.ctl.Blocks()
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].ZOrder > blocks[j].ZOrder })
	for _, b := range blocks {
		if store.AbsoluteBounds(b).Contains(m.cursor) {
			return b.ID
		}
	}
	return ""
}

// anchorUnderCursor maps the pointer to the nearer anchor of the block
// beneath it: upper half is the top anchor, lower half the bottom.
func (m canvasModel) anchorUnderCursor() (string, board.Anchor) {
	id := m.blockUnderCursor()
	if id == "" {
		return "", ""
	}
	b := m.ctl.Store().Block(id)
	bounds := m.ctl.Store().AbsoluteBounds(b)
	if m.cursor.Y < bounds.Y+bounds.H/2 {
		return id, board.AnchorTop
	}
	return id, board.AnchorBottom
}

// wireNearCursor returns the index of the connection whose midpoint lies
// closest to the pointer, or -1 when there are no wires.
func (m canvasModel) wireNearCursor() int {
	store := m.ctl.Store()
	best, bestDist := -1, math.MaxFloat64
	for i, c := range m.ctl.Connections() {
		from := store.Block(c.From)
		to := store.Block(c.To)
		if from == nil || to == nil {
			continue
		}
		a := store.BottomAnchorPoint(from)
		b := store.TopAnchorPoint(to)
		mid := board.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		dx, dy := mid.X-m.cursor.X, mid.Y-m.cursor.Y
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func (m canvasModel) View() string {
	if m.picking {
		return m.viewPicker()
	}
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("blockboard"))
	sb.WriteString(StyleDim.Render(fmt.Sprintf("  pointer %.0f,%.0f  state %s", m.cursor.X, m.cursor.Y, m.ctl.State())))
	sb.WriteString("\n")
	sb.WriteString(m.renderCanvas())
	sb.WriteString("\n")
	if m.ctl.State() == editor.StateConnecting {
		sb.WriteString(styleStatusAlert.Render(m.status))
	} else {
		sb.WriteString(styleStatus.Render(m.status))
	}
	return sb.String()
}

func (m canvasModel) viewPicker() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("New block"))
	sb.WriteString("\n\n")
	for i, t := range pickable {
		if i == m.pickIndex {
			sb.WriteString(stylePickCursor.Render("> " + t.String()))
		} else {
			sb.WriteString(stylePickItem.Render("  " + t.String()))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(stylePickChrome.Render("enter: place at pointer   esc: cancel"))
	return sb.String()
}
