package romkan

import (
	"fmt"
	"strings"
)

// Script is the writing system produced from keystrokes.
type Script int

const (
	ScriptHiragana Script = iota
	ScriptFullKatakana
	ScriptHalfKatakana
	ScriptFullAlphabet
	ScriptHalfAlphabet
)

var scriptNames = map[Script]string{
	ScriptHiragana:     "hiragana",
	ScriptFullKatakana: "full-katakana",
	ScriptHalfKatakana: "half-katakana",
	ScriptFullAlphabet: "full-alphabet",
	ScriptHalfAlphabet: "half-alphabet",
}

func (s Script) String() string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return fmt.Sprintf("script(%d)", int(s))
}

// ParseScript parses a script name as printed by String.
func ParseScript(s string) (Script, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for script, name := range scriptNames {
		if name == s {
			return script, nil
		}
	}
	return 0, fmt.Errorf("unknown script %q", s)
}

// Tables holds the table used for each kana script. A nil field falls back
// to the built-in table.
type Tables struct {
	Hiragana     *Table
	FullKatakana *Table
	HalfKatakana *Table
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Hiragana:     Hiragana,
		FullKatakana: FullKatakana,
		HalfKatakana: HalfKatakana,
	}
}

// Table returns the table for script, or nil for the alphabet scripts.
func (ts Tables) Table(s Script) *Table {
	pick := func(t, def *Table) *Table {
		if t != nil {
			return t
		}
		return def
	}
	switch s {
	case ScriptHiragana:
		return pick(ts.Hiragana, Hiragana)
	case ScriptFullKatakana:
		return pick(ts.FullKatakana, FullKatakana)
	case ScriptHalfKatakana:
		return pick(ts.HalfKatakana, HalfKatakana)
	default:
		return nil
	}
}

// ConverterFor returns the converter for script. Half-width alphabet is
// passed through unconverted and yields nil.
func (ts Tables) ConverterFor(s Script) Converter {
	if t := ts.Table(s); t != nil {
		return NewRomajiConverter(t)
	}
	if s == ScriptFullAlphabet {
		return WidthConverter{}
	}
	return nil
}

// ConverterFor returns the converter for script using the built-in tables.
func ConverterFor(s Script) Converter {
	return DefaultTables().ConverterFor(s)
}
