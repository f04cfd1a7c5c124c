// Package level parses level documents into immutable level definitions.
//
// A document has four sections separated by lines of '=':
//
//	NAME WIDTH HEIGHT
//	====
//	SYM FLAG SHEET_X SHEET_Y SHEET_W SHEET_H
//	====
//	SYM SYM ... SYM
//	====
//	player X Y
//	npc DIALOG_ID X Y
//	door TARGET_NAME TARGET_X TARGET_Y X Y
package level

import (
	"github.com/vovakirdan/tilequest/internal/core"
)

// TileID indexes a TileSet.
type TileID uint16

// TileProperties is the static metadata of one legend entry.
type TileProperties struct {
	Symbol string    // authoring symbol from the legend
	Solid  bool      // blocks movement
	Region core.Rect // sprite-sheet region; W/H may be negative for mirrored sprites
}

// TileSet is the ordered tile catalog of a level, indexed by TileID.
type TileSet struct {
	tiles []TileProperties
}

// Len returns the number of tiles.
func (ts TileSet) Len() int {
	return len(ts.tiles)
}

// At returns the properties of tile id.
func (ts TileSet) At(id TileID) (TileProperties, bool) {
	if int(id) >= len(ts.tiles) {
		return TileProperties{}, false
	}
	return ts.tiles[id], true
}

// Definition is a parsed level. It is immutable after Parse returns.
type Definition struct {
	Name       string
	Grid       *core.Grid[TileID]
	Tiles      TileSet
	Placements []Placement
}

// Width returns the map width in cells.
func (d *Definition) Width() int {
	return d.Grid.Width()
}

// Height returns the map height in cells.
func (d *Definition) Height() int {
	return d.Grid.Height()
}

// Tile returns the properties of the tile at pos, or false when pos lies
// outside the map.
func (d *Definition) Tile(pos core.Vec2) (TileProperties, bool) {
	id, ok := d.Grid.Get(pos.X, pos.Y)
	if !ok {
		return TileProperties{}, false
	}
	return d.Tiles.At(id)
}

// Contains reports whether pos is a cell of the map.
func (d *Definition) Contains(pos core.Vec2) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < d.Width() && pos.Y < d.Height()
}

// StrayPlacements returns, in authored order, the placements whose position
// lies outside the map. Parse accepts them; an NPC or door there can never be
// reached.
func (d *Definition) StrayPlacements() []Placement {
	var out []Placement
	for _, p := range d.Placements {
		if !d.Contains(p.Pos) {
			out = append(out, p)
		}
	}
	return out
}

// PlayerStart returns the authored player start. A level used as the starting
// level must have exactly one.
func (d *Definition) PlayerStart() (core.Vec2, error) {
	var (
		start core.Vec2
		found bool
	)
	for _, p := range d.Placements {
		if _, ok := p.Kind.(Player); !ok {
			continue
		}
		if found {
			return core.Vec2{}, failf(KindDuplicatePlayerStart, 0, "level %q places the player more than once", d.Name)
		}
		start, found = p.Pos, true
	}
	if !found {
		return core.Vec2{}, failf(KindMissingPlayerStart, 0, "level %q has no player start", d.Name)
	}
	return start, nil
}
