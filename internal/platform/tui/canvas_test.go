package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/dialog"
	"github.com/vovakirdan/tilequest/internal/level"
	"github.com/vovakirdan/tilequest/internal/world"
)

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Put(-1, 0, 'x', RoleText)
	c.Put(4, 0, 'x', RoleText)
	c.Put(0, 2, 'x', RoleText)
	if c.String() != "    \n    " {
		t.Errorf("out-of-bounds writes changed the canvas: %q", c.String())
	}

	c.Text(2, 1, "abcdef", RoleText)
	if c.Row(1) != "  ab" {
		t.Errorf("Row(1) = %q, expected clipped text", c.Row(1))
	}
	if got := c.At(3, 1); got.Rune != 'b' || got.Role != RoleText {
		t.Errorf("At(3,1) = %+v", got)
	}
	if got := c.At(9, 9); got != blankCell {
		t.Errorf("At outside = %+v, expected blank", got)
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Fill(core.NewRect(0, 0, 3, 3), '#', RoleWall)

	c.Resize(5, 1)
	if c.Width() != 5 || c.Height() != 1 || c.String() != "     " {
		t.Errorf("after Resize: %dx%d %q", c.Width(), c.Height(), c.String())
	}

	c.Resize(-2, 3)
	if c.Width() != 0 || c.Row(0) != "" {
		t.Errorf("negative width not clamped: %d", c.Width())
	}
}

func TestCanvasBox(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Box(core.NewRect(0, 0, 5, 3), RoleFrame)

	expected := "┌───┐\n│   │\n└───┘"
	if c.String() != expected {
		t.Errorf("Box =\n%s\nexpected\n%s", c.String(), expected)
	}
}

func TestCanvasCentered(t *testing.T) {
	c := NewCanvas(10, 1)
	c.Centered(0, "hi", RoleNotice)
	if c.Row(0) != "    hi    " {
		t.Errorf("Centered = %q", c.Row(0))
	}
}

func TestRenderKeepsText(t *testing.T) {
	c := NewCanvas(8, 2)
	c.Text(0, 0, "ab", RoleFloor)
	c.Text(2, 0, "cd", RolePlayer)
	c.Text(0, 1, "xyz", Role(200))

	out := c.Render()
	if len(strings.Split(out, "\n")) != 2 {
		t.Fatalf("Render produced %d rows", len(strings.Split(out, "\n")))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render lost %q: %q", want, out)
		}
	}
}

func TestDrawGame(t *testing.T) {
	def, err := level.Parse(`yard 4 2
====
. o 0 0 16 16
# s 16 0 16 16
====
. . . #
# . . .
====
player 1 0
npc 0 2 0
door yard 0 0 3 1
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	reg, err := world.NewRegistry(def)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	g, err := world.New(reg, dialog.Parse("Hi.\n"), "yard")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c := NewCanvas(4, 3)
	DrawGame(c, g)

	if c.Row(0) != ".@&#" {
		t.Errorf("row 0 = %q, expected \".@&#\"", c.Row(0))
	}
	if c.Row(1) != "#..+" {
		t.Errorf("row 1 = %q, expected \"#..+\"", c.Row(1))
	}
	if !strings.HasPrefix(c.Row(2), " yar") {
		t.Errorf("status row = %q", c.Row(2))
	}
	if c.At(0, 1).Role != RoleWall || c.At(1, 0).Role != RolePlayer {
		t.Errorf("roles: wall %d player %d", c.At(0, 1).Role, c.At(1, 0).Role)
	}

	// Bumping the NPC opens the dialog box over the map.
	if _, err := g.Step(core.FrameOf(core.ActionRight)); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	c.Resize(12, 5)
	DrawGame(c, g)
	if !strings.Contains(c.String(), "Hi.") {
		t.Errorf("dialog not drawn:\n%s", c.String())
	}
	if !strings.HasPrefix(c.Row(1), "┌") {
		t.Errorf("dialog box top = %q", c.Row(1))
	}
}
