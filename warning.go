package gedcom

import "fmt"

// WarningKind classifies recoverable anomalies: content the parser can
// skip or default without losing the document structure.
type WarningKind int

const (
	// WarningUnrecognizedTag is a standard tag the schema does not know.
	WarningUnrecognizedTag WarningKind = iota
	// WarningMissingValue is a tag whose payload was absent.
	WarningMissingValue
	// WarningInvalidFormat is a payload that could not be interpreted.
	WarningInvalidFormat
	// WarningExpectedValue is a required payload that was empty.
	WarningExpectedValue
)

// String returns the warning kind name.
func (k WarningKind) String() string {
	switch k {
	case WarningUnrecognizedTag:
		return "UnrecognizedTag"
	case WarningMissingValue:
		return "MissingValue"
	case WarningInvalidFormat:
		return "InvalidFormat"
	case WarningExpectedValue:
		return "ExpectedValue"
	}
	return "Unknown"
}

// Warning records a recoverable anomaly. Warnings never abort the
// parse; they accumulate in document order and the caller decides how
// to treat them.
type Warning struct {
	Line    uint32      `json:"line"`
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func newWarning(line uint32, kind WarningKind, detail string) Warning {
	var msg string
	switch kind {
	case WarningUnrecognizedTag:
		msg = fmt.Sprintf("unrecognized tag: %s", detail)
	case WarningMissingValue:
		msg = fmt.Sprintf("missing value for tag: %s", detail)
	case WarningInvalidFormat:
		msg = fmt.Sprintf("invalid format: %s", detail)
	case WarningExpectedValue:
		msg = fmt.Sprintf("expected value for tag: %s", detail)
	default:
		msg = detail
	}
	return Warning{Line: line, Kind: kind, Message: msg}
}

// String renders the warning with its line number.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
