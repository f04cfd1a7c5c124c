package level

import (
	"fmt"

	"github.com/vovakirdan/tilequest/internal/core"
)

// Kind is the entity kind of a placement. The set is closed: only Player,
// NPC and Door implement it.
type Kind interface {
	isKind()
	// Keyword is the first token of the kind's line in the starts section.
	Keyword() string
}

// Player marks the authored player start.
type Player struct{}

// NPC is a non-player character that opens a dialog when bumped.
type NPC struct {
	DialogID int
}

// Door moves the player to another level when stepped on.
type Door struct {
	Target  string // level name
	TargetX int
	TargetY int
}

func (Player) isKind() {}
func (NPC) isKind()    {}
func (Door) isKind()   {}

func (Player) Keyword() string { return "player" }
func (NPC) Keyword() string    { return "npc" }
func (Door) Keyword() string   { return "door" }

// TargetPos returns the cell the player lands on in the target level.
func (d Door) TargetPos() core.Vec2 {
	return core.V(d.TargetX, d.TargetY)
}

// Placement is an entity kind paired with its authored grid position.
type Placement struct {
	Kind Kind
	Pos  core.Vec2
}

// String renders the placement in level-file syntax.
func (p Placement) String() string {
	switch k := p.Kind.(type) {
	case Player:
		return fmt.Sprintf("%s %d %d", k.Keyword(), p.Pos.X, p.Pos.Y)
	case NPC:
		return fmt.Sprintf("%s %d %d %d", k.Keyword(), k.DialogID, p.Pos.X, p.Pos.Y)
	case Door:
		return fmt.Sprintf("%s %s %d %d %d %d", k.Keyword(), k.Target, k.TargetX, k.TargetY, p.Pos.X, p.Pos.Y)
	default:
		return "?"
	}
}
