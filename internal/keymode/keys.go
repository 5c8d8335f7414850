package keymode

// KeyCode is a key press delivered to the Machine. Non-negative codes are
// plain characters; negative codes are function keys.
type KeyCode int

// 12-key pad.
const (
	Key1 KeyCode = -201 - iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeySharp
	KeyAsterisk
)

// Function keys.
const (
	KeyBackspace KeyCode = -214 - iota
	KeySpace
	KeyEnter
	KeyRight
	KeyLeft
	KeyReverse
	KeyClose
	KeyKeyboardType
	KeyEmoji
	KeyToggleMode
	KeyShift
	KeyNop
)

// Mode switch keys.
const (
	KeySwitchFullHiragana KeyCode = -301
	KeySwitchFullKatakana KeyCode = -302
	KeySwitchFullAlphabet KeyCode = -303
	KeySwitchFullNumber   KeyCode = -304
	KeyEisuKana           KeyCode = -305
	KeySwitchHalfKatakana KeyCode = -306
	KeySwitchHalfAlphabet KeyCode = -307
	KeySwitchHalfNumber   KeyCode = -308
	KeySelectCase         KeyCode = -309
)

var switchTargets = map[KeyCode]KeyMode{
	KeySwitchFullHiragana: FullHiragana,
	KeySwitchFullKatakana: FullKatakana,
	KeySwitchFullAlphabet: FullAlphabet,
	KeySwitchFullNumber:   FullNumber,
	KeySwitchHalfKatakana: HalfKatakana,
	KeySwitchHalfAlphabet: HalfAlphabet,
	KeySwitchHalfNumber:   HalfNumber,
}

// tableIndex maps a 12-key pad key to its row in the cycle and instant
// tables.
func tableIndex(code KeyCode) (int, bool) {
	if code > Key1 || code < KeyAsterisk {
		return 0, false
	}
	return int(Key1 - code), true
}

// toggles reports whether code cycles characters in toggle input.
func (code KeyCode) toggles() bool {
	return code <= Key1 && code >= KeySharp
}

// SoftKey is an editing key forwarded to the host unchanged.
type SoftKey int

const (
	SoftKeyBackspace SoftKey = iota + 1
	SoftKeyEnter
	SoftKeyLeft
	SoftKeyRight
	SoftKeyBack
	SoftKeyShiftDown
	SoftKeyShiftUp
)

func (k SoftKey) String() string {
	switch k {
	case SoftKeyBackspace:
		return "backspace"
	case SoftKeyEnter:
		return "enter"
	case SoftKeyLeft:
		return "left"
	case SoftKeyRight:
		return "right"
	case SoftKeyBack:
		return "back"
	case SoftKeyShiftDown:
		return "shift-down"
	case SoftKeyShiftUp:
		return "shift-up"
	default:
		return "none"
	}
}
