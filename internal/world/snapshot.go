package world

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick    uint64 `yaml:"tick"`
	Level   string `yaml:"level"`
	Mode    Mode   `yaml:"mode"`
	PlayerX int    `yaml:"player_x"`
	PlayerY int    `yaml:"player_y"`
	NPCs    int    `yaml:"npcs"`
	Doors   int    `yaml:"doors"`
	Dialog  int    `yaml:"dialog"` // -1 when no dialog is open
	Halted  bool   `yaml:"halted"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	dlg := -1
	if g.hasDialog {
		dlg = g.dialogID
	}

	return Snapshot{
		Tick:    g.tick,
		Level:   g.current.Name,
		Mode:    g.mode,
		PlayerX: g.room.Player.X,
		PlayerY: g.room.Player.Y,
		NPCs:    len(g.room.NPCs),
		Doors:   len(g.room.Doors),
		Dialog:  dlg,
		Halted:  g.halted != nil,
	}
}
