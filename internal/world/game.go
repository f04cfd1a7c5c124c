package world

import (
	"fmt"

	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/dialog"
	"github.com/vovakirdan/tilequest/internal/level"
)

// Mode selects how Step interprets input.
type Mode int

const (
	ModeMap    Mode = iota // walking around a level
	ModeBattle             // placeholder; Step only counts ticks
)

func (m Mode) String() string {
	switch m {
	case ModeMap:
		return "map"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the mode by name.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// Transition records a door being followed during a tick.
type Transition struct {
	From    string
	To      string
	Trigger core.Vec2
	Arrival core.Vec2
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick         uint64
	Moved        bool
	Blocked      bool // a move was attempted and rejected
	DialogOpened bool
	DialogClosed bool
	Transition   *Transition
}

// Game is the simulation state of one play session. It is not safe for
// concurrent use; a host steps and renders it from a single goroutine.
type Game struct {
	levels  *Registry
	dialogs *dialog.Store

	current *level.Definition
	room    Room

	dialogID  int
	hasDialog bool

	mode   Mode
	tick   uint64
	halted error
}

// New starts a game in the level called start, with the player on that
// level's authored start cell.
func New(levels *Registry, dialogs *dialog.Store, start string) (*Game, error) {
	def, ok := levels.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, start)
	}
	pos, err := def.PlayerStart()
	if err != nil {
		return nil, err
	}
	if dialogs == nil {
		dialogs = dialog.Parse("")
	}

	return &Game{
		levels:  levels,
		dialogs: dialogs,
		current: def,
		room:    EnterLevel(def, pos),
	}, nil
}

// Step advances the simulation by one tick.
//
// Horizontal and vertical input resolve independently. When both keys of an
// axis are held, Left beats Right and Up beats Down. Any movement input
// closes the open dialog before collision is checked.
func (g *Game) Step(in core.InputFrame) (StepResult, error) {
	if g.halted != nil {
		return StepResult{Tick: g.tick}, g.halted
	}

	g.tick++
	res := StepResult{Tick: g.tick}
	if g.mode == ModeBattle {
		return res, nil
	}

	dx, dy := axis(in, core.ActionLeft, core.ActionRight), axis(in, core.ActionUp, core.ActionDown)
	if dx == 0 && dy == 0 {
		return res, nil
	}

	if g.hasDialog {
		g.hasDialog = false
		res.DialogClosed = true
	}

	dest := g.room.Player.Add(dx, dy)
	tile, ok := g.current.Tile(dest)
	if !ok || tile.Solid {
		res.Blocked = true
		return res, nil
	}
	if npc, ok := g.room.NPCAt(dest); ok {
		g.dialogID, g.hasDialog = npc.DialogID, true
		res.Blocked = true
		res.DialogOpened = true
		res.DialogClosed = false
		return res, nil
	}

	g.room.Player = dest
	res.Moved = true

	door, ok := g.room.DoorAt(dest)
	if !ok {
		return res, nil
	}
	target, ok := g.levels.Lookup(door.Target)
	if !ok {
		g.halted = &RuntimeError{
			Kind:   KindUnknownTargetLevel,
			Level:  g.current.Name,
			Pos:    door.Trigger,
			Target: door.Target,
		}
		return res, g.halted
	}

	res.Transition = &Transition{
		From:    g.current.Name,
		To:      target.Name,
		Trigger: door.Trigger,
		Arrival: door.TargetPos,
	}
	g.current = target
	g.room = EnterLevel(target, door.TargetPos)
	return res, nil
}

// axis resolves a pair of opposing actions to -1, 0 or +1. neg wins a tie.
func axis(in core.InputFrame, neg, pos core.Action) int {
	switch {
	case in.Has(neg):
		return -1
	case in.Has(pos):
		return 1
	default:
		return 0
	}
}

// Level returns the current level definition.
func (g *Game) Level() *level.Definition {
	return g.current
}

// Room returns a copy of the current room state.
func (g *Game) Room() Room {
	return g.room.Clone()
}

// ActiveDialog returns the id of the dialog being shown, if any.
func (g *Game) ActiveDialog() (int, bool) {
	return g.dialogID, g.hasDialog
}

// Dialogs returns the dialog store.
func (g *Game) Dialogs() *dialog.Store {
	return g.dialogs
}

// Mode returns the current interaction mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetMode switches the interaction mode.
func (g *Game) SetMode(m Mode) {
	g.mode = m
}

// Tick returns the number of ticks stepped so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Err returns the runtime error that halted the game, or nil.
func (g *Game) Err() error {
	return g.halted
}
