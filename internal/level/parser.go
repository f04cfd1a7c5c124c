package level

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tilequest/internal/core"
)

// Parse reads a level document. It stops at the first violation and returns a
// *ParseError; no partial definition is ever returned.
func Parse(text string) (*Definition, error) {
	p := &parser{legend: make(map[string]TileID)}

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSeparator(line) {
			if p.state == StateDone {
				return nil, failf(KindTrailingContent, lineNo, "separator after the starts section")
			}
			p.state = p.state.Next()
			continue
		}

		var err *ParseError
		switch p.state {
		case StateMetadata:
			err = p.metadata(lineNo, line)
		case StateLegend:
			err = p.legendLine(lineNo, line)
		case StateMap:
			err = p.mapRow(lineNo, line)
		case StateStarts:
			err = p.start(lineNo, line)
		default:
			err = failf(KindTrailingContent, lineNo, "unexpected content after parsing finished: %q", line)
		}
		if err != nil {
			return nil, err
		}
	}

	return p.finish()
}

// isSeparator reports whether line is made only of '=' characters.
func isSeparator(line string) bool {
	return strings.Trim(line, "=") == ""
}

type parser struct {
	state State

	name    string
	hasMeta bool
	width   int
	height  int

	legend map[string]TileID
	tiles  []TileProperties

	cells []TileID
	rows  int

	placements []Placement
}

func (p *parser) metadata(lineNo int, line string) *ParseError {
	if p.hasMeta {
		return failf(KindDuplicateMetadata, lineNo, "second metadata line %q", line)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return failf(KindMissingField, lineNo, "metadata needs NAME WIDTH HEIGHT, got %q", line)
	}
	if len(fields) > 3 {
		return failf(KindTrailingContent, lineNo, "metadata has extra field %q", fields[3])
	}
	w, ok := parseU16(fields[1])
	if !ok {
		return failf(KindInvalidInteger, lineNo, "width %q is not a 16-bit unsigned integer", fields[1])
	}
	h, ok := parseU16(fields[2])
	if !ok {
		return failf(KindInvalidInteger, lineNo, "height %q is not a 16-bit unsigned integer", fields[2])
	}
	p.name, p.width, p.height, p.hasMeta = fields[0], w, h, true
	return nil
}

var legendFields = []string{"symbol", "flag", "sheet x", "sheet y", "sheet w", "sheet h"}

func (p *parser) legendLine(lineNo int, line string) *ParseError {
	fields := strings.Fields(line)
	if len(fields) < len(legendFields) {
		return failf(KindMissingField, lineNo, "legend line %q has no %s", line, legendFields[len(fields)])
	}
	if len(fields) > len(legendFields) {
		return failf(KindTrailingContent, lineNo, "legend line has extra field %q", fields[len(legendFields)])
	}

	sym := fields[0]
	// A map row holding only this symbol would read as a separator.
	if isSeparator(sym) {
		return failf(KindReservedSymbol, lineNo, "symbol %q is made only of '='", sym)
	}
	if _, exists := p.legend[sym]; exists {
		return failf(KindDuplicateSymbol, lineNo, "symbol %q already in legend", sym)
	}

	var solid bool
	switch strings.ToLower(fields[1]) {
	case "o":
	case "s":
		solid = true
	default:
		return failf(KindInvalidFlag, lineNo, "flag %q must be o(pen) or s(olid)", fields[1])
	}

	x, okX := parseU16(fields[2])
	y, okY := parseU16(fields[3])
	w, okW := parseI16(fields[4])
	h, okH := parseI16(fields[5])
	for i, ok := range []bool{okX, okY, okW, okH} {
		if !ok {
			return failf(KindInvalidInteger, lineNo, "%s %q is not a valid integer", legendFields[i+2], fields[i+2])
		}
	}

	if len(p.tiles) > math.MaxUint16 {
		return failf(KindInvalidInteger, lineNo, "legend has more than %d entries", math.MaxUint16+1)
	}
	p.legend[sym] = TileID(len(p.tiles))
	p.tiles = append(p.tiles, TileProperties{
		Symbol: sym,
		Solid:  solid,
		Region: core.NewRect(x, y, w, h),
	})
	return nil
}

func (p *parser) mapRow(lineNo int, line string) *ParseError {
	if !p.hasMeta {
		return failf(KindMissingField, lineNo, "map row before metadata")
	}
	if p.rows == p.height {
		return failf(KindDimensionMismatch, lineNo, "more than %d map rows", p.height)
	}

	fields := strings.Fields(line)
	row := make([]TileID, 0, len(fields))
	for _, sym := range fields {
		id, ok := p.legend[sym]
		if !ok {
			return failf(KindUnknownSymbol, lineNo, "symbol %q is not in the legend", sym)
		}
		row = append(row, id)
	}
	if len(row) != p.width {
		return failf(KindMalformedMapRow, lineNo, "map row has %d tiles, expected %d", len(row), p.width)
	}

	p.cells = append(p.cells, row...)
	p.rows++
	return nil
}

func (p *parser) start(lineNo int, line string) *ParseError {
	fields := strings.Fields(line)
	args := fields[1:]
	malformed := func(what string) *ParseError {
		return failf(KindMalformedStartLine, lineNo, "%s line %q: bad or missing %s", fields[0], line, what)
	}

	var kind Kind
	switch fields[0] {
	case "player":
		kind = Player{}
	case "npc":
		if len(args) < 1 {
			return malformed("dialog id")
		}
		dlg, err := strconv.ParseUint(args[0], 10, strconv.IntSize-1)
		if err != nil {
			return malformed("dialog id")
		}
		kind = NPC{DialogID: int(dlg)}
		args = args[1:]
	case "door":
		if len(args) < 1 {
			return malformed("target level")
		}
		if len(args) < 3 {
			return malformed("target coordinates")
		}
		tx, okX := parseU16(args[1])
		ty, okY := parseU16(args[2])
		if !okX || !okY {
			return malformed("target coordinates")
		}
		kind = Door{Target: args[0], TargetX: tx, TargetY: ty}
		args = args[3:]
	default:
		return failf(KindUnknownEntityKind, lineNo, "unrecognized entity type %q", fields[0])
	}

	if len(args) < 2 {
		return malformed("x/y coordinates")
	}
	x, okX := parseU16(args[0])
	y, okY := parseU16(args[1])
	if !okX || !okY {
		return malformed("x/y coordinates")
	}
	if len(args) > 2 {
		return failf(KindMalformedStartLine, lineNo, "%s line has extra field %q", fields[0], args[2])
	}
	p.placements = append(p.placements, Placement{Kind: kind, Pos: core.V(x, y)})
	return nil
}

func (p *parser) finish() (*Definition, error) {
	if !p.hasMeta {
		return nil, failf(KindMissingField, 0, "document has no metadata line")
	}
	if len(p.tiles) == 0 {
		return nil, failf(KindEmptyLegend, 0, "level %q has an empty legend", p.name)
	}
	if len(p.cells) != p.width*p.height {
		return nil, failf(KindDimensionMismatch, 0, "level %q has %d tiles, expected %dx%d", p.name, len(p.cells), p.width, p.height)
	}

	grid, err := core.NewGrid(p.width, p.height, p.cells)
	if err != nil {
		return nil, failf(KindDimensionMismatch, 0, "%v", err)
	}
	return &Definition{
		Name:       p.name,
		Grid:       grid,
		Tiles:      TileSet{tiles: p.tiles},
		Placements: p.placements,
	}, nil
}

func parseU16(tok string) (int, bool) {
	v, err := strconv.ParseUint(tok, 10, 16)
	return int(v), err == nil
}

func parseI16(tok string) (int, bool) {
	v, err := strconv.ParseInt(tok, 10, 16)
	return int(v), err == nil
}
