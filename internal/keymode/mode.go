// Package keymode implements the key mode state machine of the Japanese
// keyboard: which script the keys produce, how a 12-key pad cycles through
// characters, and which modes a text field allows.
//
// The Machine never touches the composing buffer itself. It reports what
// should happen as Events to a Handler, which owns the buffer.
package keymode

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrModeRejected is returned when a mode change is disallowed by the
// current field constraint.
var ErrModeRejected = errors.New("keymode: mode rejected")

// KeyMode is the script and width the keyboard produces.
type KeyMode int

const (
	// Invalid marks a mode change that must not happen.
	Invalid KeyMode = -1

	FullHiragana KeyMode = iota - 1
	FullAlphabet
	FullNumber
	FullKatakana
	HalfAlphabet
	HalfNumber
	HalfKatakana
	HalfPhone
)

var modeNames = [...]string{
	FullHiragana: "full-hiragana",
	FullAlphabet: "full-alphabet",
	FullNumber:   "full-number",
	FullKatakana: "full-katakana",
	HalfAlphabet: "half-alphabet",
	HalfNumber:   "half-number",
	HalfKatakana: "half-katakana",
	HalfPhone:    "half-phone",
}

func (m KeyMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	if m == Invalid {
		return "invalid"
	}
	return fmt.Sprintf("keymode(%d)", int(m))
}

// ParseKeyMode parses a mode name as printed by String.
func ParseKeyMode(s string) (KeyMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return KeyMode(i), nil
		}
	}
	return Invalid, fmt.Errorf("unknown key mode %q", s)
}

// base reports whether a hardware keyboard can type in m directly.
func (m KeyMode) base() bool {
	return m == FullHiragana || m == HalfAlphabet
}

// InputClass tells how 12-key presses become characters.
type InputClass int

const (
	// Toggle cycles the pending character on repeated presses.
	Toggle InputClass = iota + 1
	// Instant commits one fixed character per press.
	Instant
)

func (c InputClass) String() string {
	switch c {
	case Toggle:
		return "toggle"
	case Instant:
		return "instant"
	default:
		return "none"
	}
}

// EngineMode is the conversion engine sub-mode announced with a mode change.
type EngineMode int

const (
	EngineDefault EngineMode = iota
	EngineDirect
	EngineNoLv1Conv
	EngineFullKatakana
	EngineHalfKatakana
	EngineOptType12Key
	EngineOptTypeQwerty
	EngineSymbol
	EngineEisuKana
)

var engineModeNames = [...]string{
	EngineDefault:       "default",
	EngineDirect:        "direct",
	EngineNoLv1Conv:     "no-lv1-conv",
	EngineFullKatakana:  "full-katakana",
	EngineHalfKatakana:  "half-katakana",
	EngineOptType12Key:  "opt-type-12key",
	EngineOptTypeQwerty: "opt-type-qwerty",
	EngineSymbol:        "symbol",
	EngineEisuKana:      "eisu-kana",
}

func (e EngineMode) String() string {
	if e >= 0 && int(e) < len(engineModeNames) {
		return engineModeNames[e]
	}
	return fmt.Sprintf("engine(%d)", int(e))
}

// Icon identifies the status indicator for a mode.
type Icon int

const (
	IconNone Icon = iota
	IconHiragana
	IconFullKatakana
	IconFullAlphabet
	IconFullNumber
	IconHalfKatakana
	IconHalfAlphabet
	IconHalfNumber
)

var iconLabels = [...]string{
	IconNone:         "",
	IconHiragana:     "あ",
	IconFullKatakana: "ア",
	IconFullAlphabet: "Ａ",
	IconFullNumber:   "１",
	IconHalfKatakana: "ｱ",
	IconHalfAlphabet: "A",
	IconHalfNumber:   "1",
}

// Label returns the one character indicator text of the icon.
func (i Icon) Label() string {
	if i >= 0 && int(i) < len(iconLabels) {
		return iconLabels[i]
	}
	return ""
}

// IconFor returns the status icon of mode. Half number and half phone share
// one icon.
func IconFor(m KeyMode) Icon {
	switch m {
	case FullHiragana:
		return IconHiragana
	case FullKatakana:
		return IconFullKatakana
	case FullAlphabet:
		return IconFullAlphabet
	case FullNumber:
		return IconFullNumber
	case HalfKatakana:
		return IconHalfKatakana
	case HalfAlphabet:
		return IconHalfAlphabet
	case HalfNumber, HalfPhone:
		return IconHalfNumber
	default:
		return IconNone
	}
}

// KeyboardType is the on-screen keyboard layout.
type KeyboardType int

const (
	Qwerty KeyboardType = iota
	TwelveKey
)

func (k KeyboardType) String() string {
	if k == TwelveKey {
		return "12key"
	}
	return "qwerty"
}

// ParseKeyboardType accepts "qwerty" and "12key".
func ParseKeyboardType(s string) (KeyboardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qwerty", "":
		return Qwerty, nil
	case "12key", "12-key", "twelvekey":
		return TwelveKey, nil
	default:
		return Qwerty, fmt.Errorf("unknown keyboard type %q", s)
	}
}

// IsJapanese reports whether a POSIX or BCP 47 locale name such as
// "ja_JP.UTF-8" or "ja-JP" selects the Japanese language.
func IsJapanese(locale string) bool {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	ja, _ := language.Japanese.Base()
	return base == ja
}
