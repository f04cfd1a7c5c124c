package tui

import (
	"fmt"

	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/dialog"
	"github.com/vovakirdan/tilequest/internal/world"
)

// Glyphs used for entities on the terminal map.
const (
	glyphPlayer = '@'
	glyphNPC    = '&'
	glyphDoor   = '+'
)

// Camera returns the top-left map cell shown at screen (0,0) so that the
// player stays visible on a view of w x h cells. Maps smaller than the view
// are centered, which yields a negative origin.
func Camera(mapW, mapH, w, h int, player core.Vec2) core.Vec2 {
	axis := func(size, view, p int) int {
		if size <= view {
			return -(view - size) / 2
		}
		return core.Clamp(p-view/2, 0, size-view)
	}
	return core.V(axis(mapW, w, player.X), axis(mapH, h, player.Y))
}

// DrawGame draws the current level, its entities and the open dialog into
// dst. The bottom row is used for a status line.
func DrawGame(dst *Canvas, g *world.Game) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 1 {
		return
	}

	def := g.Level()
	room := g.Room()
	viewH := dst.Height() - 1
	cam := Camera(def.Width(), def.Height(), dst.Width(), viewH, room.Player)

	for y, row := range def.Grid.Rows() {
		for x, id := range row {
			tile, _ := def.Tiles.At(id)
			role := RoleFloor
			if tile.Solid {
				role = RoleWall
			}
			dst.Put(x-cam.X, y-cam.Y, []rune(tile.Symbol)[0], role)
		}
	}
	for _, d := range room.Doors {
		dst.Put(d.Trigger.X-cam.X, d.Trigger.Y-cam.Y, glyphDoor, RoleDoor)
	}
	for _, n := range room.NPCs {
		dst.Put(n.Pos.X-cam.X, n.Pos.Y-cam.Y, glyphNPC, RoleNPC)
	}
	dst.Put(room.Player.X-cam.X, room.Player.Y-cam.Y, glyphPlayer, RolePlayer)

	if id, ok := g.ActiveDialog(); ok {
		drawDialog(dst, g.Dialogs(), id, viewH)
	}

	status := fmt.Sprintf(" %s %s  tick %d", def.Name, room.Player, g.Tick())
	if g.Mode() != world.ModeMap {
		status += "  [" + g.Mode().String() + "]"
	}
	dst.Text(0, dst.Height()-1, status, RoleStatus)
}

// drawDialog draws a bordered message box across the bottom of the map view.
func drawDialog(dst *Canvas, store *dialog.Store, id, viewH int) {
	raw, ok := store.Lines(id)
	if !ok {
		return
	}

	var lines []string
	for _, l := range raw {
		lines = append(lines, dialog.Wrap(l, dst.Width()-4)...)
	}

	h := len(lines) + 2
	if h > viewH {
		h = viewH
		lines = lines[:max(h-2, 0)]
	}
	box := core.NewRect(0, viewH-h, dst.Width(), h)
	dst.Fill(box, ' ', RoleBlank)
	dst.Box(box, RoleFrame)
	for i, l := range lines {
		dst.Text(2, box.Y+1+i, l, RoleText)
	}
}
