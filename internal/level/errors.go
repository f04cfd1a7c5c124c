package level

import "fmt"

// ErrorKind classifies a level document failure.
type ErrorKind uint8

const (
	KindDuplicateMetadata ErrorKind = iota + 1
	KindMissingField
	KindInvalidInteger
	KindInvalidFlag
	KindDuplicateSymbol
	KindUnknownSymbol
	KindMalformedMapRow
	KindDimensionMismatch
	KindEmptyLegend
	KindUnknownEntityKind
	KindMalformedStartLine
	KindTrailingContent
	KindMissingPlayerStart
	KindDuplicatePlayerStart
	KindReservedSymbol
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateMetadata:
		return "DuplicateMetadata"
	case KindMissingField:
		return "MissingField"
	case KindInvalidInteger:
		return "InvalidInteger"
	case KindInvalidFlag:
		return "InvalidFlag"
	case KindDuplicateSymbol:
		return "DuplicateSymbol"
	case KindUnknownSymbol:
		return "UnknownSymbol"
	case KindMalformedMapRow:
		return "MalformedMapRow"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindEmptyLegend:
		return "EmptyLegend"
	case KindUnknownEntityKind:
		return "UnknownEntityKind"
	case KindMalformedStartLine:
		return "MalformedStartLine"
	case KindTrailingContent:
		return "TrailingContent"
	case KindMissingPlayerStart:
		return "MissingPlayerStart"
	case KindDuplicatePlayerStart:
		return "DuplicatePlayerStart"
	case KindReservedSymbol:
		return "ReservedSymbol"
	default:
		return "Unknown"
	}
}

// ParseError describes why a level document was rejected.
// Line is 1-based; 0 means the failure was found after the last line.
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("level: line %d: [%s] %s", e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("level: [%s] %s", e.Kind, e.Message)
}

// Is matches any *ParseError of the same kind, so the Err* values below can be
// used with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrDuplicateMetadata    = &ParseError{Kind: KindDuplicateMetadata}
	ErrMissingField         = &ParseError{Kind: KindMissingField}
	ErrInvalidInteger       = &ParseError{Kind: KindInvalidInteger}
	ErrInvalidFlag          = &ParseError{Kind: KindInvalidFlag}
	ErrDuplicateSymbol      = &ParseError{Kind: KindDuplicateSymbol}
	ErrUnknownSymbol        = &ParseError{Kind: KindUnknownSymbol}
	ErrMalformedMapRow      = &ParseError{Kind: KindMalformedMapRow}
	ErrDimensionMismatch    = &ParseError{Kind: KindDimensionMismatch}
	ErrEmptyLegend          = &ParseError{Kind: KindEmptyLegend}
	ErrUnknownEntityKind    = &ParseError{Kind: KindUnknownEntityKind}
	ErrMalformedStartLine   = &ParseError{Kind: KindMalformedStartLine}
	ErrTrailingContent      = &ParseError{Kind: KindTrailingContent}
	ErrMissingPlayerStart   = &ParseError{Kind: KindMissingPlayerStart}
	ErrDuplicatePlayerStart = &ParseError{Kind: KindDuplicatePlayerStart}
	ErrReservedSymbol       = &ParseError{Kind: KindReservedSymbol}
)

func failf(kind ErrorKind, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
