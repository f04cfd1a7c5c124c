package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilequest/internal/core"
)

// Role says what a terminal cell shows; the palette turns roles into styles.
type Role uint8

const (
	RoleBlank Role = iota
	RoleFloor
	RoleWall
	RoleDoor
	RoleNPC
	RolePlayer
	RoleFrame
	RoleText
	RoleStatus
	RoleNotice
)

// palette maps cell roles to lipgloss styles.
var palette = map[Role]lipgloss.Style{
	RoleBlank:  lipgloss.NewStyle(),
	RoleFloor:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	RoleWall:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	RoleDoor:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	RoleNPC:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	RolePlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	RoleFrame:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	RoleText:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	RoleStatus: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	RoleNotice: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Reverse(true),
}

// Cell is one character position of a Canvas.
type Cell struct {
	Rune rune
	Role Role
}

var blankCell = Cell{Rune: ' ', Role: RoleBlank}

// Canvas is a character buffer the game view is drawn into before it is
// styled. Cells are stored row-major. Writes outside the canvas are dropped.
type Canvas struct {
	width, height int
	cells         []Cell
}

// NewCanvas creates a blank canvas of w x h cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Resize reallocates the canvas and blanks it. The view is redrawn every
// frame, so old content is not kept.
func (c *Canvas) Resize(w, h int) {
	c.width, c.height = max(w, 0), max(h, 0)
	c.cells = make([]Cell, c.width*c.height)
	c.Clear()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// Put sets one cell.
func (c *Canvas) Put(x, y int, r rune, role Role) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Role: role}
}

// At returns the cell at (x, y), or a blank cell outside the canvas.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blankCell
	}
	return c.cells[y*c.width+x]
}

// Text writes s left to right from (x, y), clipping at the edges.
func (c *Canvas) Text(x, y int, s string, role Role) {
	for i, r := range []rune(s) {
		c.Put(x+i, y, r, role)
	}
}

// Centered writes s horizontally centered on row y.
func (c *Canvas) Centered(y int, s string, role Role) {
	c.Text((c.width-len([]rune(s)))/2, y, s, role)
}

// Fill sets every cell of r.
func (c *Canvas) Fill(r core.Rect, ch rune, role Role) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.Put(x, y, ch, role)
		}
	}
}

// Box outlines r with box-drawing characters.
func (c *Canvas) Box(r core.Rect, role Role) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		c.Put(x, r.Y, '─', role)
		c.Put(x, bottom, '─', role)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Put(r.X, y, '│', role)
		c.Put(right, y, '│', role)
	}
	c.Put(r.X, r.Y, '┌', role)
	c.Put(right, r.Y, '┐', role)
	c.Put(r.X, bottom, '└', role)
	c.Put(right, bottom, '┘', role)
}

// Row returns row y without styling.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the canvas without styling, rows joined by newlines.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Render styles the canvas for display. Adjacent cells with the same role
// share one styled run.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(len(c.cells)*2 + c.height)

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			role := row[start].Role
			end := start
			var run strings.Builder
			for end < len(row) && row[end].Role == role {
				run.WriteRune(row[end].Rune)
				end++
			}
			style, ok := palette[role]
			if !ok {
				style = palette[RoleBlank]
			}
			sb.WriteString(style.Render(run.String()))
			start = end
		}
	}
	return sb.String()
}
