package keymode

// EventKind names the action a Handler is asked to perform.
type EventKind int

const (
	// EventCommitComposing flushes the composing text to the field.
	EventCommitComposing EventKind = iota + 1
	// EventChangeMode announces a new input class and engine mode.
	EventChangeMode
	// EventToggleChar cycles the pending character forward through Cycle.
	EventToggleChar
	// EventReverseToggleChar cycles the pending character backward.
	EventReverseToggleChar
	// EventReplaceChar rewrites the last character through Replace.
	EventReplaceChar
	// EventTouchOtherKey ends the current toggle run.
	EventTouchOtherKey
	// EventInputChar inputs Char.
	EventInputChar
	// EventSoftKey forwards Key to the host.
	EventSoftKey
	// EventConvert asks for kana to kanji conversion of the reading.
	EventConvert
)

func (k EventKind) String() string {
	switch k {
	case EventCommitComposing:
		return "commit-composing"
	case EventChangeMode:
		return "change-mode"
	case EventToggleChar:
		return "toggle-char"
	case EventReverseToggleChar:
		return "reverse-toggle-char"
	case EventReplaceChar:
		return "replace-char"
	case EventTouchOtherKey:
		return "touch-other-key"
	case EventInputChar:
		return "input-char"
	case EventSoftKey:
		return "soft-key"
	case EventConvert:
		return "convert"
	default:
		return "unknown"
	}
}

// Event is emitted by the Machine. Only the fields relevant to Kind are set.
// Cycle and Replace reference shared tables and must not be modified.
type Event struct {
	Kind    EventKind
	Class   InputClass
	Mode    EngineMode
	Cycle   []string
	Replace map[string]string
	Char    string
	Key     SoftKey
}

// Handler receives the Machine's events. It is called synchronously from
// the Machine method that caused the event.
type Handler interface {
	OnEvent(Event)
	ShowStatusIcon(Icon)
}

// CapsReporter is optionally implemented by a Handler to report whether
// the text before the cursor calls for a capital letter.
type CapsReporter interface {
	CursorCapsMode() bool
}
