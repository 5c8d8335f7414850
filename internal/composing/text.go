// Package composing implements the layered composing buffer used while text
// is being typed but not yet committed to the host field.
//
// Layer 0 holds the raw keystrokes, one segment per character. Layer 1 holds
// the letter-converted text (kana produced from romaji); every layer 1
// segment records the [From, To] range of raw characters it came from, so the
// host can always map displayed kana back to the keystrokes that produced
// them. Layer 2 is reserved for the external conversion engine.
package composing

import (
	"errors"
	"fmt"
	"strings"
)

// Layer identifies one stage of the composing buffer.
type Layer int

const (
	// LayerRaw holds raw input characters.
	LayerRaw Layer = iota
	// LayerLetters holds letter-converted segments (romaji to kana).
	LayerLetters
	// LayerConversion holds candidates of the external conversion engine.
	LayerConversion

	numLayers
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerRaw:
		return "raw"
	case LayerLetters:
		return "letters"
	case LayerConversion:
		return "conversion"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

var (
	// ErrOutOfRange is returned for an invalid layer, segment index or count.
	ErrOutOfRange = errors.New("composing: index out of range")

	// ErrDiscontinuous is returned when an edit would leave a gap or an
	// overlap in the source positions covered by a layer.
	ErrDiscontinuous = errors.New("composing: replacement breaks source continuity")
)

// Segment is an immutable run of text together with the inclusive range of
// raw input positions it was produced from.
type Segment struct {
	Text string
	From int
	To   int
}

// Span returns the number of raw positions covered by the segment.
func (s Segment) Span() int {
	return s.To - s.From + 1
}

// Text is the composing buffer of one edit session.
// It is not safe for concurrent use.
type Text struct {
	layers [numLayers][]Segment
	cursor [numLayers]int
}

// New returns an empty composing buffer.
func New() *Text {
	return &Text{}
}

func (t *Text) checkLayer(layer Layer) error {
	if layer < 0 || layer >= numLayers {
		return fmt.Errorf("%w: layer %d", ErrOutOfRange, int(layer))
	}
	return nil
}

// SegmentCount returns the number of segments in layer, or 0 for an unknown
// layer.
func (t *Text) SegmentCount(layer Layer) int {
	if t.checkLayer(layer) != nil {
		return 0
	}
	return len(t.layers[layer])
}

// Segment returns the segment at index in layer.
func (t *Text) Segment(layer Layer, index int) (Segment, error) {
	if err := t.checkLayer(layer); err != nil {
		return Segment{}, err
	}
	segs := t.layers[layer]
	if index < 0 || index >= len(segs) {
		return Segment{}, fmt.Errorf("%w: %s segment %d of %d", ErrOutOfRange, layer, index, len(segs))
	}
	return segs[index], nil
}

// Segments returns a copy of the segments in layer.
func (t *Text) Segments(layer Layer) []Segment {
	if t.checkLayer(layer) != nil {
		return nil
	}
	out := make([]Segment, len(t.layers[layer]))
	copy(out, t.layers[layer])
	return out
}

// Cursor returns the edit position of layer as a segment index.
func (t *Text) Cursor(layer Layer) int {
	if t.checkLayer(layer) != nil {
		return 0
	}
	return t.cursor[layer]
}

// String returns the concatenated text of layer.
func (t *Text) String(layer Layer) string {
	if t.checkLayer(layer) != nil {
		return ""
	}
	var b strings.Builder
	for _, s := range t.layers[layer] {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Empty reports whether there is no pending input.
func (t *Text) Empty() bool {
	return len(t.layers[LayerRaw]) == 0
}

// Clear drops all layers.
func (t *Text) Clear() {
	for i := range t.layers {
		t.layers[i] = nil
		t.cursor[i] = 0
	}
}

// Insert appends one raw input character. The character is mirrored into
// the letters layer as an unconverted segment and any conversion result is
// discarded.
func (t *Text) Insert(ch string) {
	pos := len(t.layers[LayerRaw])
	seg := Segment{Text: ch, From: pos, To: pos}
	t.layers[LayerRaw] = append(t.layers[LayerRaw], seg)
	t.layers[LayerLetters] = append(t.layers[LayerLetters], seg)
	t.resetConversion()
	t.cursor[LayerRaw] = len(t.layers[LayerRaw])
	t.cursor[LayerLetters] = len(t.layers[LayerLetters])
}

// ReplaceTail removes the n segments immediately before the cursor of layer
// and inserts segs in their place. The replacement must cover exactly the
// source range of the removed segments, in order and without gaps. On
// success the cursor is placed after the inserted segments, which is the
// end of the layer while composing.
func (t *Text) ReplaceTail(layer Layer, segs []Segment, n int) error {
	if err := t.checkLayer(layer); err != nil {
		return err
	}
	cur := t.cursor[layer]
	if n < 0 || n > cur {
		return fmt.Errorf("%w: replace %d segments before cursor %d", ErrOutOfRange, n, cur)
	}
	old := t.layers[layer]
	removed := old[cur-n : cur]
	if err := checkReplacement(old, cur-n, cur, removed, segs); err != nil {
		return err
	}

	next := make([]Segment, 0, len(old)-n+len(segs))
	next = append(next, old[:cur-n]...)
	next = append(next, segs...)
	next = append(next, old[cur:]...)
	t.layers[layer] = next
	t.cursor[layer] = cur - n + len(segs)
	if layer != LayerConversion {
		t.resetConversion()
	}
	return nil
}

func checkReplacement(old []Segment, start, end int, removed, segs []Segment) error {
	for i, s := range segs {
		if s.Span() < 1 {
			return fmt.Errorf("%w: segment %q has range [%d,%d]", ErrDiscontinuous, s.Text, s.From, s.To)
		}
		if i > 0 && s.From != segs[i-1].To+1 {
			return fmt.Errorf("%w: gap between %d and %d", ErrDiscontinuous, segs[i-1].To, s.From)
		}
	}

	switch {
	case len(removed) > 0 && len(segs) == 0:
		return fmt.Errorf("%w: %d segments replaced by nothing", ErrDiscontinuous, len(removed))
	case len(removed) > 0:
		first, last := removed[0], removed[len(removed)-1]
		if segs[0].From != first.From || segs[len(segs)-1].To != last.To {
			return fmt.Errorf("%w: [%d,%d] replaced by [%d,%d]", ErrDiscontinuous,
				first.From, last.To, segs[0].From, segs[len(segs)-1].To)
		}
	case len(segs) > 0:
		want := 0
		if start > 0 {
			want = old[start-1].To + 1
		}
		if segs[0].From != want {
			return fmt.Errorf("%w: insertion starts at %d, want %d", ErrDiscontinuous, segs[0].From, want)
		}
		if end < len(old) && old[end].From != segs[len(segs)-1].To+1 {
			return fmt.Errorf("%w: insertion overlaps position %d", ErrDiscontinuous, old[end].From)
		}
	}
	return nil
}

// ReplaceLast rewrites the text of the last letters segment, keeping its
// source range. When the segment stands for a single raw character holding
// the same text, the raw layer is rewritten too so both layers stay in step
// during toggle input. Raw input converted to other letters is kept.
func (t *Text) ReplaceLast(text string) error {
	letters := t.layers[LayerLetters]
	if len(letters) == 0 {
		return fmt.Errorf("%w: no letters to replace", ErrOutOfRange)
	}
	last := &letters[len(letters)-1]
	old := last.Text
	last.Text = text
	raw := t.layers[LayerRaw]
	if last.From == last.To && last.From < len(raw) && raw[last.From].Text == old {
		raw[last.From].Text = text
	}
	t.resetConversion()
	return nil
}

// DeleteLast removes the last letters segment together with the raw
// characters it was produced from. It reports whether anything was removed.
func (t *Text) DeleteLast() bool {
	letters := t.layers[LayerLetters]
	if len(letters) == 0 {
		return false
	}
	last := letters[len(letters)-1]
	t.layers[LayerLetters] = letters[:len(letters)-1]
	if last.From <= len(t.layers[LayerRaw]) {
		t.layers[LayerRaw] = t.layers[LayerRaw][:last.From]
	}
	t.cursor[LayerRaw] = len(t.layers[LayerRaw])
	t.cursor[LayerLetters] = len(t.layers[LayerLetters])
	t.resetConversion()
	return true
}

func (t *Text) resetConversion() {
	t.layers[LayerConversion] = nil
	t.cursor[LayerConversion] = 0
}
