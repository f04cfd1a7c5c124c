package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/level"
)

var (
	// ErrDuplicateLevel is returned when two definitions share a name.
	ErrDuplicateLevel = errors.New("world: duplicate level name")
	// ErrUnknownLevel is returned when a requested level is not loaded.
	ErrUnknownLevel = errors.New("world: unknown level")
)

// Registry owns every loaded level definition for the lifetime of a game.
// It is read-only after NewRegistry returns.
type Registry struct {
	order  []string
	levels map[string]*level.Definition
}

// LevelInfo contains summary data about a loaded level.
type LevelInfo struct {
	Name   string
	Width  int
	Height int
	NPCs   int
	Doors  int
}

// DanglingDoor is a door whose target level is not in the registry, or
// whose arrival cell lies outside the target level's map.
type DanglingDoor struct {
	Level   string
	Pos     core.Vec2
	Target  string
	Arrival core.Vec2
	OffGrid bool // target exists but Arrival is outside it
}

func (d DanglingDoor) String() string {
	if d.OffGrid {
		return fmt.Sprintf("%s %s -> %q %s: arrival outside the map", d.Level, d.Pos, d.Target, d.Arrival)
	}
	return fmt.Sprintf("%s %s -> %q", d.Level, d.Pos, d.Target)
}

// NewRegistry collects defs in the given order.
// Returns ErrDuplicateLevel if a name repeats.
func NewRegistry(defs ...*level.Definition) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(defs)),
		levels: make(map[string]*level.Definition, len(defs)),
	}
	for _, d := range defs {
		if _, exists := r.levels[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLevel, d.Name)
		}
		r.order = append(r.order, d.Name)
		r.levels[d.Name] = d
	}
	return r, nil
}

// Lookup returns the level called name.
func (r *Registry) Lookup(name string) (*level.Definition, bool) {
	d, ok := r.levels[name]
	return d, ok
}

// Names returns level names in load order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of loaded levels.
func (r *Registry) Len() int {
	return len(r.order)
}

// List returns information about all loaded levels, sorted by name.
func (r *Registry) List() []LevelInfo {
	result := make([]LevelInfo, 0, len(r.order))
	for _, name := range r.order {
		d := r.levels[name]
		info := LevelInfo{Name: name, Width: d.Width(), Height: d.Height()}
		for _, p := range d.Placements {
			switch p.Kind.(type) {
			case level.NPC:
				info.NPCs++
			case level.Door:
				info.Doors++
			}
		}
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// CheckDoors reports every door, in load order, whose target level is not
// loaded or whose arrival cell is outside that level. Step still fails at
// runtime when a door to a missing level is used.
func (r *Registry) CheckDoors() []DanglingDoor {
	var out []DanglingDoor
	for _, name := range r.order {
		for _, p := range r.levels[name].Placements {
			door, ok := p.Kind.(level.Door)
			if !ok {
				continue
			}
			d := DanglingDoor{Level: name, Pos: p.Pos, Target: door.Target, Arrival: door.TargetPos()}
			target, found := r.levels[door.Target]
			if found {
				if target.Contains(d.Arrival) {
					continue
				}
				d.OffGrid = true
			}
			out = append(out, d)
		}
	}
	return out
}
