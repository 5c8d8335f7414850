// Package romkan converts romaji typed into a composing buffer to kana.
//
// Conversion is incremental: after every keystroke the session calls
// Convert, which rewrites at most the last MaxKeyLength letters segments
// before the cursor. Raw keystrokes are never touched.
package romkan

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"kanaime/internal/composing"
)

// ErrNoMatch is returned by a converter when nothing before the cursor could
// be converted. The buffer is left unchanged.
var ErrNoMatch = errors.New("romkan: no match")

// Converter rewrites the letters layer of a composing buffer.
type Converter interface {
	Convert(text *composing.Text) error
}

// RomajiConverter converts romaji to kana using a Table.
type RomajiConverter struct {
	table *Table
}

// NewRomajiConverter returns a converter backed by table.
func NewRomajiConverter(table *Table) *RomajiConverter {
	return &RomajiConverter{table: table}
}

// Table returns the backing table.
func (c *RomajiConverter) Table() *Table {
	return c.table
}

// Convert tries windows of the last MaxKeyLength down to 1 letters segments
// before the cursor and replaces the longest window whose concatenated text is
// a table key. The match is uppercased when the last character of the window
// is uppercase.
func (c *RomajiConverter) Convert(text *composing.Text) error {
	window, err := tail(text, MaxKeyLength)
	if err != nil {
		return err
	}

	for start := range window {
		segs := window[start:]
		key := joinText(segs)
		if key == "" {
			continue
		}
		match, ok := c.table.Lookup(strings.ToLower(key))
		if !ok {
			continue
		}
		if last, _ := utf8.DecodeLastRuneInString(key); unicode.IsUpper(last) {
			match = strings.ToUpper(match)
		}

		out := splitMatch(match, segs[0].From, segs[len(segs)-1].To)
		if err := text.ReplaceTail(composing.LayerLetters, out, len(segs)); err != nil {
			return fmt.Errorf("replace %q: %w", key, err)
		}
		return nil
	}
	return ErrNoMatch
}

// splitMatch spans a single character match over the whole window. A longer
// match keeps its last character on the last raw position so that a trailing
// consonant (the k of っk) stays individually addressable.
func splitMatch(match string, from, to int) []composing.Segment {
	runes := []rune(match)
	if len(runes) == 1 || from == to {
		return []composing.Segment{{Text: match, From: from, To: to}}
	}
	n := len(runes) - 1
	return []composing.Segment{
		{Text: string(runes[:n]), From: from, To: to - 1},
		{Text: string(runes[n]), From: to, To: to},
	}
}

// WidthConverter widens half-width letters, digits and symbols. It backs the
// full-width alphabet script where no table lookup is involved.
type WidthConverter struct{}

// Convert widens the trailing run of half-width segments before the cursor,
// keeping case and spans.
func (WidthConverter) Convert(text *composing.Text) error {
	var out []composing.Segment
	for i := text.Cursor(composing.LayerLetters) - 1; i >= 0; i-- {
		seg, err := text.Segment(composing.LayerLetters, i)
		if err != nil {
			return err
		}
		wide := width.Widen.String(seg.Text)
		if wide == seg.Text {
			break
		}
		out = append(out, composing.Segment{Text: wide, From: seg.From, To: seg.To})
	}
	if len(out) == 0 {
		return ErrNoMatch
	}
	slices.Reverse(out)
	return text.ReplaceTail(composing.LayerLetters, out, len(out))
}

// tail returns up to n letters segments ending at the cursor.
func tail(text *composing.Text, n int) ([]composing.Segment, error) {
	cursor := text.Cursor(composing.LayerLetters)
	n = min(n, cursor)
	segs := make([]composing.Segment, 0, n)
	for i := cursor - n; i < cursor; i++ {
		seg, err := text.Segment(composing.LayerLetters, i)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func joinText(segs []composing.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
