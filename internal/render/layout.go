// Package render turns the game state into draw geometry: an ordered list of
// sprites, each a screen rectangle paired with a sprite-sheet region. It never
// touches a graphics device.
//
// Screen positions are sprite centers in pixels with the origin at the bottom
// left corner and y growing upward, so grid row 0 ends up at the top.
package render

import "github.com/vovakirdan/tilequest/internal/core"

// Layout holds the screen geometry and the sheet regions of everything that is
// not a map tile.
type Layout struct {
	TileSize int `yaml:"tile_size"`
	ScreenW  int `yaml:"screen_w"`
	ScreenH  int `yaml:"screen_h"`

	// Message window, horizontally centered, Margin pixels above the bottom.
	WindowW      int `yaml:"window_w"`
	WindowH      int `yaml:"window_h"`
	WindowMargin int `yaml:"window_margin"`
	TextInset    int `yaml:"text_inset"`

	// Bitmap font: glyphs FirstGlyph..LastGlyph laid out left to right in
	// FontSheet, GlyphW x GlyphH each with GlyphPad pixels between them.
	GlyphW     int       `yaml:"glyph_w"`
	GlyphH     int       `yaml:"glyph_h"`
	GlyphPad   int       `yaml:"glyph_pad"`
	LineHeight int       `yaml:"line_height"`
	FirstGlyph rune      `yaml:"-"`
	LastGlyph  rune      `yaml:"-"`
	FontSheet  core.Rect `yaml:"-"`

	Player core.Rect `yaml:"-"`
	NPC    core.Rect `yaml:"-"`
	Door   core.Rect `yaml:"-"`
	Window core.Rect `yaml:"-"`
}

// DefaultLayout returns the geometry of the stock tile sheet.
func DefaultLayout() Layout {
	return Layout{
		TileSize: 16,
		ScreenW:  320,
		ScreenH:  240,

		WindowW:      288,
		WindowH:      112,
		WindowMargin: 16,
		TextInset:    16,

		GlyphW:     8,
		GlyphH:     8,
		GlyphPad:   1,
		LineHeight: 12,
		FirstGlyph: ' ',
		LastGlyph:  '~',
		FontSheet:  core.NewRect(0, 738, 288, 765),

		Player: core.NewRect(0, 578, 16, 16),
		NPC:    core.NewRect(0, 714, 16, 16),
		Door:   core.NewRect(561, 34, 16, 16),
		Window: core.NewRect(765, 442, 16, 16),
	}
}

// WindowRect returns the message window as a bottom-left anchored rectangle.
func (l Layout) WindowRect() core.Rect {
	return core.NewRect((l.ScreenW-l.WindowW)/2, l.WindowMargin, l.WindowW, l.WindowH)
}

// TextColumns returns how many glyphs fit on one line inside the window.
func (l Layout) TextColumns() int {
	if l.GlyphW <= 0 {
		return 0
	}
	return (l.WindowW - 2*l.TextInset) / l.GlyphW
}

// GlyphRegion returns the sheet region for r, or false if the font has no
// glyph for it.
func (l Layout) GlyphRegion(r rune) (core.Rect, bool) {
	if r < l.FirstGlyph || r > l.LastGlyph {
		return core.Rect{}, false
	}
	step := l.GlyphW + l.GlyphPad
	perRow := 1
	if step > 0 && l.FontSheet.W >= step {
		perRow = l.FontSheet.W / step
	}
	idx := int(r - l.FirstGlyph)
	col, row := idx%perRow, idx/perRow
	return core.NewRect(l.FontSheet.X+col*step, l.FontSheet.Y+row*(l.GlyphH+l.GlyphPad), l.GlyphW, l.GlyphH), true
}
