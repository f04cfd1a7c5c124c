// Package dialog holds the id-indexed dialog text shown when the player talks
// to an NPC.
package dialog

import "strings"

// LineBreak is the two-character marker that separates display lines inside
// one dialog entry.
const LineBreak = `\n`

// Store is an ordered, read-only list of dialog entries. The entry index is
// the dialog id referenced by NPC placements.
type Store struct {
	entries []string
}

// Parse builds a store from a dialog blob with one entry per line. Blank lines
// keep their index. A final newline does not add an empty entry.
func Parse(text string) *Store {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return &Store{}
	}
	entries := strings.Split(text, "\n")
	for i, e := range entries {
		entries[i] = strings.TrimSuffix(e, "\r")
	}
	return &Store{entries: entries}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get returns the raw entry for id.
func (s *Store) Get(id int) (string, bool) {
	if id < 0 || id >= len(s.entries) {
		return "", false
	}
	return s.entries[id], true
}

// Lines returns the display lines of entry id.
func (s *Store) Lines(id int) ([]string, bool) {
	e, ok := s.Get(id)
	if !ok {
		return nil, false
	}
	return strings.Split(e, LineBreak), true
}

// Wrap breaks line into chunks of at most width runes, splitting on spaces
// where possible. Words longer than width are cut.
func Wrap(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}

	var (
		out []string
		cur []rune
	)
	flush := func() {
		out = append(out, string(cur))
		cur = cur[:0]
	}

	for _, word := range strings.Fields(line) {
		w := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(w) > width {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		for len(cur)+len(w) > width {
			n := width - len(cur)
			cur = append(cur, w[:n]...)
			w = w[n:]
			flush()
		}
		cur = append(cur, w...)
	}
	if len(cur) > 0 || len(out) == 0 {
		flush()
	}
	return out
}
