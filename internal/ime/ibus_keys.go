package ime

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"kanaime/internal/keymode"
)

// IBus key event state masks
const (
	IBusShiftMask   uint32 = 1 << 0
	IBusLockMask    uint32 = 1 << 1
	IBusControlMask uint32 = 1 << 2
	IBusMod1Mask    uint32 = 1 << 3 // Alt
	IBusMod4Mask    uint32 = 1 << 6 // Super/Meta
	IBusReleaseMask uint32 = 1 << 30
)

// Common GDK key symbols
const (
	GDKBackSpace        = 0xff08
	GDKTab              = 0xff09
	GDKReturn           = 0xff0d
	GDKEscape           = 0xff1b
	GDKDelete           = 0xffff
	GDKSpace            = 0x0020
	GDKLeft             = 0xff51
	GDKRight            = 0xff53
	GDKKPEnter          = 0xff8d
	GDKKP0              = 0xffb0
	GDKKP9              = 0xffb9
	GDKMuhenkan         = 0xff22
	GDKHenkan           = 0xff23
	GDKHiragana         = 0xff25
	GDKKatakana         = 0xff26
	GDKHiraganaKatakana = 0xff27
	GDKZenkakuHankaku   = 0xff2a
	GDKEisuToggle       = 0xff30
)

// IBus input purposes, from IBusInputPurpose.
const (
	IBusPurposeFreeForm uint32 = iota
	IBusPurposeAlpha
	IBusPurposeDigits
	IBusPurposeNumber
	IBusPurposePhone
	IBusPurposeURL
	IBusPurposeEmail
	IBusPurposeName
	IBusPurposePassword
	IBusPurposePIN
	IBusPurposeTerminal
)

var functionKeys = map[uint32]keymode.KeyCode{
	GDKBackSpace:        keymode.KeyBackspace,
	GDKReturn:           keymode.KeyEnter,
	GDKKPEnter:          keymode.KeyEnter,
	GDKLeft:             keymode.KeyLeft,
	GDKRight:            keymode.KeyRight,
	GDKSpace:            keymode.KeySpace,
	GDKZenkakuHankaku:   keymode.KeyToggleMode,
	GDKHiragana:         keymode.KeySwitchFullHiragana,
	GDKHiraganaKatakana: keymode.KeySwitchFullHiragana,
	GDKKatakana:         keymode.KeySwitchFullKatakana,
	GDKMuhenkan:         keymode.KeySwitchHalfAlphabet,
	GDKEisuToggle:       keymode.KeyEisuKana,
}

// translateKey maps an IBus key event to a session key code. It reports
// false for events left to the application: releases, shortcuts with
// Control, Alt or Super, and keys without a meaning for kana input.
func translateKey(keyval, state uint32) (keymode.KeyCode, bool) {
	if state&IBusReleaseMask != 0 {
		return 0, false
	}
	if state&(IBusControlMask|IBusMod1Mask|IBusMod4Mask) != 0 {
		return 0, false
	}
	if code, ok := functionKeys[keyval]; ok {
		return code, true
	}
	if keyval >= GDKKP0 && keyval <= GDKKP9 {
		return keymode.KeyCode('0' + rune(keyval-GDKKP0)), true
	}
	if r := keyvalToRune(keyval); r > ' ' && r != 0x7f {
		return keymode.KeyCode(r), true
	}
	return 0, false
}

// keyvalToRune converts X11 keysym to Unicode rune.
func keyvalToRune(keyval uint32) rune {
	// Direct Unicode mapping for Latin-1 range
	if keyval >= 0x20 && keyval <= 0x7e {
		return rune(keyval)
	}

	// Extended Latin (ISO 8859-1)
	if keyval >= 0xa0 && keyval <= 0xff {
		return rune(keyval)
	}

	// Unicode keysyms (0x01000000 + codepoint)
	if keyval >= 0x01000000 {
		return rune(keyval - 0x01000000)
	}

	return 0
}

// fieldForPurpose describes a client field from its IBus input purpose.
func fieldForPurpose(purpose uint32) keymode.FieldInfo {
	switch purpose {
	case IBusPurposeDigits, IBusPurposeNumber, IBusPurposePIN:
		return keymode.FieldInfo{Class: keymode.FieldNumber}
	case IBusPurposePhone:
		return keymode.FieldInfo{Class: keymode.FieldPhone}
	case IBusPurposeURL:
		return keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationURI}
	case IBusPurposeEmail:
		return keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationEmail}
	case IBusPurposePassword:
		return keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationPassword}
	default:
		return keymode.FieldInfo{Class: keymode.FieldText}
	}
}

// Property names announced to the panel.
const (
	propInputMode       = "InputMode"
	propInputModePrefix = propInputMode + "."
)

// modeProperties lists the key modes offered in the panel menu.
var modeProperties = []keymode.KeyMode{
	keymode.FullHiragana,
	keymode.FullKatakana,
	keymode.HalfKatakana,
	keymode.FullAlphabet,
	keymode.HalfAlphabet,
	keymode.FullNumber,
	keymode.HalfNumber,
}

func modePropertyKey(m keymode.KeyMode) string {
	return propInputModePrefix + m.String()
}

// parseModeProperty returns the key mode a panel property activates.
func parseModeProperty(name string) (keymode.KeyMode, bool) {
	rest, ok := strings.CutPrefix(name, propInputModePrefix)
	if !ok {
		return keymode.Invalid, false
	}
	m, err := keymode.ParseKeyMode(rest)
	if err != nil {
		return keymode.Invalid, false
	}
	return m, true
}

// sentenceStart reports whether the cursor of a surrounding text sits at
// the start of a sentence: at the beginning of the text or after
// sentence-ending punctuation followed by white space.
func sentenceStart(text string, cursor uint32) bool {
	runes := []rune(text)
	if int(cursor) < len(runes) {
		runes = runes[:cursor]
	}
	head := string(runes)
	before := strings.TrimRightFunc(head, unicode.IsSpace)
	if before == "" {
		return true
	}
	if len(before) == len(head) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(before)
	return strings.ContainsRune(".!?。！？", last)
}
