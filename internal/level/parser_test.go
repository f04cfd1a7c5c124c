package level

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tilequest/internal/core"
)

const sampleLevel = `town 4 3
====
. o 0 0 16 16
# S 16 0 16 16
~ s 32 0 -16 16
====
# # # #
# . . ~
# . . #
====
player 1 1
npc 5 2 1
door cave 1 1 2 2
door cave 3 3 2 2
====
`

func TestStateNext(t *testing.T) {
	order := []State{StateMetadata, StateLegend, StateMap, StateStarts, StateDone}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, expected %s", order[i], got, order[i+1])
		}
	}
	if StateDone.Next() != StateDone {
		t.Error("Done should be terminal")
	}
}

func TestParseSample(t *testing.T) {
	def, err := Parse(sampleLevel)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if def.Name != "town" {
		t.Errorf("Name = %q, expected %q", def.Name, "town")
	}
	if def.Width() != 4 || def.Height() != 3 {
		t.Errorf("size = %dx%d, expected 4x3", def.Width(), def.Height())
	}
	if def.Tiles.Len() != 3 {
		t.Fatalf("Tiles.Len() = %d, expected 3", def.Tiles.Len())
	}

	wall, _ := def.Tiles.At(1)
	if !wall.Solid || wall.Symbol != "#" || wall.Region != core.NewRect(16, 0, 16, 16) {
		t.Errorf("tile 1 = %+v, expected solid # at (16,0,16,16)", wall)
	}
	water, _ := def.Tiles.At(2)
	if !water.Solid || water.Region.W != -16 {
		t.Errorf("tile 2 = %+v, expected solid mirrored tile", water)
	}

	if tile, ok := def.Tile(core.V(3, 1)); !ok || tile.Symbol != "~" {
		t.Errorf("Tile(3,1) = %+v, %v, expected ~", tile, ok)
	}
	if _, ok := def.Tile(core.V(4, 0)); ok {
		t.Error("Tile(4,0) should be absent")
	}

	expected := []Placement{
		{Kind: Player{}, Pos: core.V(1, 1)},
		{Kind: NPC{DialogID: 5}, Pos: core.V(2, 1)},
		{Kind: Door{Target: "cave", TargetX: 1, TargetY: 1}, Pos: core.V(2, 2)},
		{Kind: Door{Target: "cave", TargetX: 3, TargetY: 3}, Pos: core.V(2, 2)},
	}
	if !reflect.DeepEqual(def.Placements, expected) {
		t.Errorf("Placements = %+v, expected %+v", def.Placements, expected)
	}
}

func TestParseCellCountMatchesSize(t *testing.T) {
	def, err := Parse(sampleLevel)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if def.Grid.Len() != def.Width()*def.Height() {
		t.Errorf("grid has %d cells, expected %d", def.Grid.Len(), def.Width()*def.Height())
	}
	for y, row := range def.Grid.Rows() {
		for x, id := range row {
			if int(id) >= def.Tiles.Len() {
				t.Errorf("cell (%d,%d) = %d is not a valid tile id", x, y, id)
			}
		}
	}
}

func TestLegendOrderAssignsIDs(t *testing.T) {
	text := "order 3 1\n====\nA o 0 0 1 1\nB o 0 0 1 1\nC s 0 0 1 1\n====\nC B A\n"
	def, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []TileID{2, 1, 0}
	for x, want := range expected {
		got, _ := def.Grid.Get(x, 0)
		if got != want {
			t.Errorf("cell %d = %d, expected %d", x, got, want)
		}
	}
	for id, sym := range []string{"A", "B", "C"} {
		tile, _ := def.Tiles.At(TileID(id))
		if tile.Symbol != sym {
			t.Errorf("tile %d = %q, expected %q", id, tile.Symbol, sym)
		}
	}
}

func TestParsePreservesRowOrder(t *testing.T) {
	text := "rows 1 3\n====\na o 0 0 1 1\nb o 0 0 1 1\nc o 0 0 1 1\n====\na\nb\nc\n"
	def, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for y, sym := range []string{"a", "b", "c"} {
		tile, _ := def.Tile(core.V(0, y))
		if tile.Symbol != sym {
			t.Errorf("row %d = %q, expected %q", y, tile.Symbol, sym)
		}
	}
}

func TestParseToleratesBlankLinesAndCRLF(t *testing.T) {
	text := strings.ReplaceAll(sampleLevel, "\n", "\r\n\r\n  \n")
	def, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Grid.Len() != 12 || len(def.Placements) != 4 {
		t.Errorf("unexpected result: %d cells, %d placements", def.Grid.Len(), len(def.Placements))
	}
}

func TestParseErrors(t *testing.T) {
	const legend = "====\nX s 0 0 16 16\n. o 0 0 16 16\n====\n"

	tests := []struct {
		name     string
		text     string
		expected error
		line     int
	}{
		{
			name:     "unknown map symbol",
			text:     "room1 3 3\n====\nX s 0 0 16 16\n====\nX X Y\nX X X\nX X X\n",
			expected: ErrUnknownSymbol,
			line:     5,
		},
		{
			name:     "second metadata line",
			text:     "a 1 1\nb 1 1\n" + legend + "X\n",
			expected: ErrDuplicateMetadata,
			line:     2,
		},
		{
			name:     "metadata without height",
			text:     "a 1\n" + legend + "X\n",
			expected: ErrMissingField,
			line:     1,
		},
		{
			name:     "width not an integer",
			text:     "a wide 1\n" + legend + "X\n",
			expected: ErrInvalidInteger,
			line:     1,
		},
		{
			name:     "width overflows 16 bits",
			text:     "a 70000 1\n" + legend + "X\n",
			expected: ErrInvalidInteger,
			line:     1,
		},
		{
			name:     "negative height",
			text:     "a 1 -1\n" + legend + "X\n",
			expected: ErrInvalidInteger,
			line:     1,
		},
		{
			name:     "bad flag",
			text:     "a 1 1\n====\nX w 0 0 16 16\n====\nX\n",
			expected: ErrInvalidFlag,
			line:     3,
		},
		{
			name:     "legend line missing sheet height",
			text:     "a 1 1\n====\nX s 0 0 16\n====\nX\n",
			expected: ErrMissingField,
			line:     3,
		},
		{
			name:     "legend sheet width not an integer",
			text:     "a 1 1\n====\nX s 0 0 wide 16\n====\nX\n",
			expected: ErrInvalidInteger,
			line:     3,
		},
		{
			name:     "duplicate legend symbol",
			text:     "a 1 1\n====\nX s 0 0 16 16\nX o 0 0 16 16\n====\nX\n",
			expected: ErrDuplicateSymbol,
			line:     4,
		},
		{
			name:     "short map row",
			text:     "a 2 1\n" + legend + "X\n",
			expected: ErrMalformedMapRow,
			line:     6,
		},
		{
			name:     "long map row",
			text:     "a 2 1\n" + legend + "X . X\n",
			expected: ErrMalformedMapRow,
			line:     6,
		},
		{
			name:     "too many map rows",
			text:     "a 1 1\n" + legend + "X\nX\n",
			expected: ErrDimensionMismatch,
			line:     7,
		},
		{
			name:     "too few map rows",
			text:     "a 1 2\n" + legend + "X\n",
			expected: ErrDimensionMismatch,
			line:     0,
		},
		{
			name:     "empty legend",
			text:     "a 0 0\n====\n====\n====\n",
			expected: ErrEmptyLegend,
			line:     0,
		},
		{
			name:     "no metadata",
			text:     "====\nX s 0 0 16 16\n====\n",
			expected: ErrMissingField,
			line:     0,
		},
		{
			name:     "unknown entity kind",
			text:     "a 1 1\n" + legend + "X\n====\nchest 0 0\n",
			expected: ErrUnknownEntityKind,
			line:     8,
		},
		{
			name:     "player without y",
			text:     "a 1 1\n" + legend + "X\n====\nplayer 0\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "npc with bad dialog id",
			text:     "a 1 1\n" + legend + "X\n====\nnpc -2 0 0\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "door without target coordinates",
			text:     "a 1 1\n" + legend + "X\n====\ndoor b 0 0\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "door with bad position",
			text:     "a 1 1\n" + legend + "X\n====\ndoor b 0 0 x 0\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "content after done",
			text:     "a 1 1\n" + legend + "X\n====\nplayer 0 0\n====\nplayer 0 0\n",
			expected: ErrTrailingContent,
			line:     10,
		},
		{
			name:     "metadata with extra field",
			text:     "a 1 1 2\n" + legend + "X\n",
			expected: ErrTrailingContent,
			line:     1,
		},
		{
			name:     "legend line with extra field",
			text:     "a 1 1\n====\nX s 0 0 16 16 9\n====\nX\n",
			expected: ErrTrailingContent,
			line:     3,
		},
		{
			name:     "legend symbol made of separators",
			text:     "a 1 1\n====\n== o 0 0 16 16\n====\n==\n",
			expected: ErrReservedSymbol,
			line:     3,
		},
		{
			name:     "player with extra field",
			text:     "a 1 1\n" + legend + "X\n====\nplayer 0 0 0\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "npc with extra field",
			text:     "a 1 1\n" + legend + "X\n====\nnpc 1 0 0 extra\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "door with extra field",
			text:     "a 1 1\n" + legend + "X\n====\ndoor b 0 0 0 0 0\n",
			expected: ErrMalformedStartLine,
			line:     8,
		},
		{
			name:     "separator after done",
			text:     "a 1 1\n" + legend + "X\n====\n====\n====\n",
			expected: ErrTrailingContent,
			line:     9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse(tc.text)
			if def != nil {
				t.Errorf("Parse returned a definition alongside error %v", err)
			}
			if !errors.Is(err, tc.expected) {
				t.Fatalf("Parse error = %v, expected kind %v", err, tc.expected.(*ParseError).Kind)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Line != tc.line {
				t.Errorf("error line = %d, expected %d (%v)", pe.Line, tc.line, err)
			}
		})
	}
}

func TestParseErrorKindsAreDistinct(t *testing.T) {
	if errors.Is(ErrUnknownSymbol, ErrMalformedMapRow) {
		t.Error("different kinds should not match")
	}
	err := failf(KindEmptyLegend, 3, "x")
	if !strings.Contains(err.Error(), "line 3") || !strings.Contains(err.Error(), "EmptyLegend") {
		t.Errorf("Error() = %q, expected line and kind", err.Error())
	}
}

func TestPlayerStart(t *testing.T) {
	tests := []struct {
		name     string
		starts   string
		expected error
		pos      core.Vec2
	}{
		{"single start", "player 0 0\nnpc 1 0 0\n", nil, core.V(0, 0)},
		{"no start", "npc 1 0 0\n", ErrMissingPlayerStart, core.Vec2{}},
		{"two starts", "player 0 0\nplayer 0 0\n", ErrDuplicatePlayerStart, core.Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse("a 1 1\n====\n. o 0 0 1 1\n====\n.\n====\n" + tc.starts)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			pos, err := def.PlayerStart()
			if tc.expected == nil {
				if err != nil || pos != tc.pos {
					t.Errorf("PlayerStart() = %v, %v, expected %v", pos, err, tc.pos)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("PlayerStart() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestStrayPlacements(t *testing.T) {
	def, err := Parse("a 2 2\n====\n. o 0 0 1 1\n====\n. .\n. .\n====\n" +
		"player 1 1\nnpc 3 2 0\ndoor b 9 9 0 1\nnpc 4 1 2\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	stray := def.StrayPlacements()
	if len(stray) != 2 {
		t.Fatalf("StrayPlacements() = %v, expected 2", stray)
	}
	if stray[0].Pos != core.V(2, 0) || stray[1].Pos != core.V(1, 2) {
		t.Errorf("StrayPlacements() = %v, expected authored order", stray)
	}
	if !def.Contains(core.V(1, 1)) || def.Contains(core.V(-1, 0)) {
		t.Error("Contains disagrees with the 2x2 map")
	}
}

func TestPlacementString(t *testing.T) {
	tests := []struct {
		p        Placement
		expected string
	}{
		{Placement{Kind: Player{}, Pos: core.V(1, 2)}, "player 1 2"},
		{Placement{Kind: NPC{DialogID: 7}, Pos: core.V(3, 4)}, "npc 7 3 4"},
		{Placement{Kind: Door{Target: "cave", TargetX: 5, TargetY: 6}, Pos: core.V(0, 1)}, "door cave 5 6 0 1"},
	}

	for _, tc := range tests {
		if got := tc.p.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
		def, err := Parse("a 8 8\n====\n. o 0 0 1 1\n====\n" + strings.Repeat(". . . . . . . .\n", 8) + "====\n" + tc.p.String() + "\n")
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.p, err)
		}
		if !reflect.DeepEqual(def.Placements[0], tc.p) {
			t.Errorf("Parse(%q) = %+v", tc.p, def.Placements[0])
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	def, err := Parse(sampleLevel)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	again, err := Parse(Format(def))
	if err != nil {
		t.Fatalf("Parse(Format()) failed: %v\n%s", err, Format(def))
	}
	if !reflect.DeepEqual(def, again) {
		t.Errorf("round trip changed the definition:\n%s", Format(again))
	}
}
