// Package world runs the adventure simulation: the live room state derived from
// a level definition and the per-tick step that moves the player, opens NPC
// dialogs and follows doors between levels.
package world

import (
	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/level"
)

// NPC is a live non-player character.
type NPC struct {
	Pos      core.Vec2
	DialogID int
}

// Door is a live door. Stepping onto Trigger moves the player to TargetPos in
// the Target level.
type Door struct {
	Target    string
	TargetPos core.Vec2
	Trigger   core.Vec2
}

// Room is the mutable runtime state of the current level.
type Room struct {
	Player core.Vec2
	NPCs   []NPC
	Doors  []Door
}

// EnterLevel builds a fresh room for def with the player at playerPos.
// Player placements in def are ignored; NPCs and doors keep placement order.
func EnterLevel(def *level.Definition, playerPos core.Vec2) Room {
	r := Room{Player: playerPos}
	for _, p := range def.Placements {
		switch k := p.Kind.(type) {
		case level.NPC:
			r.NPCs = append(r.NPCs, NPC{Pos: p.Pos, DialogID: k.DialogID})
		case level.Door:
			r.Doors = append(r.Doors, Door{Target: k.Target, TargetPos: k.TargetPos(), Trigger: p.Pos})
		}
	}
	return r
}

// NPCAt returns the first NPC standing on pos.
func (r Room) NPCAt(pos core.Vec2) (NPC, bool) {
	for _, n := range r.NPCs {
		if n.Pos == pos {
			return n, true
		}
	}
	return NPC{}, false
}

// DoorAt returns the first door triggered at pos.
func (r Room) DoorAt(pos core.Vec2) (Door, bool) {
	for _, d := range r.Doors {
		if d.Trigger == pos {
			return d, true
		}
	}
	return Door{}, false
}

// Clone returns a deep copy of the room.
func (r Room) Clone() Room {
	r.NPCs = append([]NPC(nil), r.NPCs...)
	r.Doors = append([]Door(nil), r.Doors...)
	return r
}
