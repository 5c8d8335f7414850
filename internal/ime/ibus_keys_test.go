package ime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanaime/internal/keymode"
)

// TestKeyvalToRune tests the X11 keysym to rune conversion.
func TestKeyvalToRune(t *testing.T) {
	tests := []struct {
		name   string
		keyval uint32
		want   rune
	}{
		// ASCII printable characters
		{"space", 0x20, ' '},
		{"letter A", 0x41, 'A'},
		{"letter a", 0x61, 'a'},
		{"digit 0", 0x30, '0'},
		{"tilde", 0x7e, '~'},

		// Extended Latin
		{"pound", 0xa3, '£'},

		// Unicode keysyms
		{"unicode hiragana a", 0x01003042, 'あ'},

		// Non-character keys
		{"backspace", GDKBackSpace, 0},
		{"return", GDKReturn, 0},
		{"function key", 0xffbe, 0}, // F1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyvalToRune(tt.keyval))
		})
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		keyval uint32
		state  uint32
		want   keymode.KeyCode
		ok     bool
	}{
		{"letter", 'k', 0, keymode.KeyCode('k'), true},
		{"shifted letter", 'K', IBusShiftMask, keymode.KeyCode('K'), true},
		{"digit", '1', 0, keymode.KeyCode('1'), true},
		{"keypad digit", GDKKP0 + 5, 0, keymode.KeyCode('5'), true},
		{"space", GDKSpace, 0, keymode.KeySpace, true},
		{"backspace", GDKBackSpace, 0, keymode.KeyBackspace, true},
		{"return", GDKReturn, 0, keymode.KeyEnter, true},
		{"keypad enter", GDKKPEnter, 0, keymode.KeyEnter, true},
		{"left", GDKLeft, 0, keymode.KeyLeft, true},
		{"zenkaku hankaku", GDKZenkakuHankaku, 0, keymode.KeyToggleMode, true},
		{"katakana", GDKKatakana, 0, keymode.KeySwitchFullKatakana, true},
		{"muhenkan", GDKMuhenkan, 0, keymode.KeySwitchHalfAlphabet, true},
		{"eisu", GDKEisuToggle, 0, keymode.KeyEisuKana, true},
		{"release", 'k', IBusReleaseMask, 0, false},
		{"control", 'c', IBusControlMask, 0, false},
		{"alt", 'f', IBusMod1Mask, 0, false},
		{"super", 'l', IBusMod4Mask, 0, false},
		{"escape", GDKEscape, 0, 0, false},
		{"tab", GDKTab, 0, 0, false},
		{"delete", GDKDelete, 0, 0, false},
		{"shift key", 0xffe1, IBusShiftMask, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.keyval, tt.state)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFieldForPurpose(t *testing.T) {
	tests := []struct {
		purpose uint32
		want    keymode.FieldInfo
	}{
		{IBusPurposeFreeForm, keymode.FieldInfo{Class: keymode.FieldText}},
		{IBusPurposeTerminal, keymode.FieldInfo{Class: keymode.FieldText}},
		{IBusPurposeDigits, keymode.FieldInfo{Class: keymode.FieldNumber}},
		{IBusPurposePIN, keymode.FieldInfo{Class: keymode.FieldNumber}},
		{IBusPurposePhone, keymode.FieldInfo{Class: keymode.FieldPhone}},
		{IBusPurposeEmail, keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationEmail}},
		{IBusPurposeURL, keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationURI}},
		{IBusPurposePassword, keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationPassword}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fieldForPurpose(tt.purpose), "purpose %d", tt.purpose)
	}
}

func TestModeProperty(t *testing.T) {
	for _, m := range modeProperties {
		got, ok := parseModeProperty(modePropertyKey(m))
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}

	_, ok := parseModeProperty("InputMode.klingon")
	assert.False(t, ok)
	_, ok = parseModeProperty(propInputMode)
	assert.False(t, ok)
}

func TestSentenceStart(t *testing.T) {
	tests := []struct {
		text   string
		cursor uint32
		want   bool
	}{
		{"", 0, true},
		{"   ", 3, true},
		{"Hello", 5, false},
		{"Hello.", 6, false},
		{"Hello. ", 7, true},
		{"Really? ", 8, true},
		{"Hello. world", 7, true},
		{"Hello, ", 7, false},
		{"終わり。 ", 5, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sentenceStart(tt.text, tt.cursor), "%q at %d", tt.text, tt.cursor)
	}
}
