package level

// State is a section of a level document. Sections appear in a fixed order
// and are separated by lines made only of '=' characters.
type State uint8

const (
	StateMetadata State = iota
	StateLegend
	StateMap
	StateStarts
	StateDone
)

// Next returns the section that follows s. Done is terminal.
func (s State) Next() State {
	switch s {
	case StateMetadata:
		return StateLegend
	case StateLegend:
		return StateMap
	case StateMap:
		return StateStarts
	default:
		return StateDone
	}
}

// String returns the section name.
func (s State) String() string {
	switch s {
	case StateMetadata:
		return "metadata"
	case StateLegend:
		return "legend"
	case StateMap:
		return "map"
	case StateStarts:
		return "starts"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
