package vic

// Severity says how an edit failure should be presented.
type Severity int

const (
	// SeveritySilent outcomes are recovered without telling the user.
	SeveritySilent Severity = iota
	// SeverityNotification outcomes are shown as a transient message.
	SeverityNotification
)

// DisallowedAction is an edit that could not be applied. It is a normal
// error with an attached presentation severity.
type DisallowedAction interface {
	error
	Severity() Severity
}

type disallowedEdit string

func (e disallowedEdit) Error() string {
	return string(e)
}

func (e disallowedEdit) Severity() Severity {
	return SeverityNotification
}

var (
	// ErrDisallowedHiresColor is returned when a pixel of a high
	// resolution cell is set to a color role only multicolor cells can
	// express.
	ErrDisallowedHiresColor DisallowedAction = disallowedEdit("vic: high resolution characters can be painted with color 0-7, or background")
	// ErrDisallowedCharColor is returned when a cell color outside the
	// allowed range is requested.
	ErrDisallowedCharColor DisallowedAction = disallowedEdit("vic: character color must be between 0 and 7")
)

type noChange struct{}

func (noChange) Error() string {
	return "no change"
}

func (noChange) Severity() Severity {
	return SeveritySilent
}

// ErrNoChange reports that an edit had no effect. It is silent: callers
// drop the edit instead of surfacing it.
var ErrNoChange DisallowedAction = noChange{}
