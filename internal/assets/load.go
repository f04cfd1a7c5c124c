package assets

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilequest/internal/dialog"
	"github.com/vovakirdan/tilequest/internal/level"
	"github.com/vovakirdan/tilequest/internal/world"
)

// LoadWorld parses the named levels and the dialog blob from src. With no
// names, every level the source lists is loaded. A missing dialog blob yields
// an empty store.
func LoadWorld(src Source, names []string) (*world.Registry, *dialog.Store, error) {
	if len(names) == 0 {
		var err error
		if names, err = src.Names(); err != nil {
			return nil, nil, err
		}
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%w: no levels", ErrNotFound)
	}

	defs := make([]*level.Definition, 0, len(names))
	for _, name := range names {
		text, err := src.Level(name)
		if err != nil {
			return nil, nil, fmt.Errorf("load level %q: %w", name, err)
		}
		def, err := level.Parse(text)
		if err != nil {
			return nil, nil, fmt.Errorf("load level %q: %w", name, err)
		}
		defs = append(defs, def)
	}

	reg, err := world.NewRegistry(defs...)
	if err != nil {
		return nil, nil, err
	}

	text, err := src.Dialog()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, nil, fmt.Errorf("load dialog: %w", err)
	}
	return reg, dialog.Parse(text), nil
}
