package world

import (
	"fmt"

	"github.com/vovakirdan/tilequest/internal/core"
)

// RuntimeErrorKind classifies a failure found while the simulation runs.
type RuntimeErrorKind uint8

const (
	KindUnknownTargetLevel RuntimeErrorKind = iota + 1
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case KindUnknownTargetLevel:
		return "UnknownTargetLevel"
	default:
		return "Unknown"
	}
}

// RuntimeError is a content defect discovered during play. It is fatal for
// the session: once returned, the game refuses to step further.
type RuntimeError struct {
	Kind   RuntimeErrorKind
	Level  string    // level the player was in
	Pos    core.Vec2 // door trigger position
	Target string    // missing level name
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("world: [%s] door at %s in level %q leads to unknown level %q",
		e.Kind, e.Pos, e.Level, e.Target)
}

// Is matches any *RuntimeError of the same kind.
func (e *RuntimeError) Is(target error) bool {
	t, ok := target.(*RuntimeError)
	return ok && t.Kind == e.Kind
}

// ErrUnknownTargetLevel matches runtime errors for doors into missing levels.
var ErrUnknownTargetLevel = &RuntimeError{Kind: KindUnknownTargetLevel}
