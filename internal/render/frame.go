package render

import (
	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/dialog"
	"github.com/vovakirdan/tilequest/internal/world"
)

// SpriteKind tags what a sprite depicts.
type SpriteKind uint8

const (
	KindTile SpriteKind = iota
	KindNPC
	KindDoor
	KindPlayer
	KindWindow
	KindGlyph
)

func (k SpriteKind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindNPC:
		return "npc"
	case KindDoor:
		return "door"
	case KindPlayer:
		return "player"
	case KindWindow:
		return "window"
	case KindGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the kind by name.
func (k SpriteKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Sprite is one draw command.
type Sprite struct {
	Kind   SpriteKind `yaml:"kind"`
	X      int        `yaml:"x"` // center
	Y      int        `yaml:"y"`
	W      int        `yaml:"w"`
	H      int        `yaml:"h"`
	Region core.Rect  `yaml:"region,flow"`
}

// Frame returns the sprites for the current state of g, in draw order: map
// tiles row by row, NPCs, doors, the player, then the message window and its
// text when a dialog is open.
func Frame(g *world.Game, l Layout) []Sprite {
	out := make([]Sprite, 0, Count(g, l))

	def := g.Level()
	for y, row := range def.Grid.Rows() {
		for x, id := range row {
			tile, _ := def.Tiles.At(id)
			out = append(out, l.cell(KindTile, core.V(x, y), tile.Region))
		}
	}

	room := g.Room()
	for _, n := range room.NPCs {
		out = append(out, l.cell(KindNPC, n.Pos, l.NPC))
	}
	for _, d := range room.Doors {
		out = append(out, l.cell(KindDoor, d.Trigger, l.Door))
	}
	out = append(out, l.cell(KindPlayer, room.Player, l.Player))

	lines, ok := dialogLines(g, l)
	if !ok {
		return out
	}

	win := l.WindowRect()
	out = append(out, Sprite{
		Kind:   KindWindow,
		X:      win.X + win.W/2,
		Y:      win.Y + win.H/2,
		W:      win.W,
		H:      win.H,
		Region: l.Window,
	})

	top := win.Bottom() - l.TextInset - l.GlyphH/2
	for i, line := range lines {
		y := top - i*l.LineHeight
		for col, r := range []rune(line) {
			region, ok := l.GlyphRegion(r)
			if !ok {
				continue
			}
			out = append(out, Sprite{
				Kind:   KindGlyph,
				X:      win.X + l.TextInset + col*l.GlyphW + l.GlyphW/2,
				Y:      y,
				W:      l.GlyphW,
				H:      l.GlyphH,
				Region: region,
			})
		}
	}
	return out
}

// Count returns len(Frame(g, l)) without building the sprites.
func Count(g *world.Game, l Layout) int {
	room := g.Room()
	n := g.Level().Grid.Len() + len(room.NPCs) + len(room.Doors) + 1

	lines, ok := dialogLines(g, l)
	if !ok {
		return n
	}
	n++
	for _, line := range lines {
		for _, r := range line {
			if _, ok := l.GlyphRegion(r); ok {
				n++
			}
		}
	}
	return n
}

// cell places a tile-sized sprite on grid cell pos.
func (l Layout) cell(kind SpriteKind, pos core.Vec2, region core.Rect) Sprite {
	return Sprite{
		Kind:   kind,
		X:      pos.X*l.TileSize + l.TileSize/2,
		Y:      l.ScreenH - pos.Y*l.TileSize - l.TileSize/2,
		W:      l.TileSize,
		H:      l.TileSize,
		Region: region,
	}
}

// dialogLines returns the wrapped text of the open dialog. An open dialog id
// with no entry in the store draws nothing.
func dialogLines(g *world.Game, l Layout) ([]string, bool) {
	id, ok := g.ActiveDialog()
	if !ok {
		return nil, false
	}
	raw, ok := g.Dialogs().Lines(id)
	if !ok {
		return nil, false
	}

	var lines []string
	for _, line := range raw {
		lines = append(lines, dialog.Wrap(line, l.TextColumns())...)
	}
	return lines, true
}
