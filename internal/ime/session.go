package ime

import (
	"errors"
	"time"

	"kanaime/internal/composing"
	"kanaime/internal/keymode"
	"kanaime/internal/logging"
	"kanaime/internal/romkan"
)

// Host is the application side of a session: the text field the session
// commits into and the UI showing its state.
type Host interface {
	// CommitText inserts text into the field.
	CommitText(text string)
	// ModeChanged reports a new input class or engine mode.
	ModeChanged(class keymode.InputClass, mode keymode.EngineMode)
	// ShowStatusIcon shows the icon of the current key mode.
	ShowStatusIcon(icon keymode.Icon)
	// SendKey passes a key the session did not consume on to the field.
	SendKey(key keymode.SoftKey)
	// RequestConversion asks an external engine to convert reading to
	// kanji. The result is committed with Session.CommitConversion.
	RequestConversion(reading string)
}

// PreeditReporter is optionally implemented by a Host that displays the
// composing text.
type PreeditReporter interface {
	PreeditChanged(text string)
}

// toggleState tracks the character cycled by repeated presses of one
// 12-key pad key.
type toggleState struct {
	cycle  []string
	index  int
	active bool
}

func (t *toggleState) reset() {
	t.cycle = nil
	t.index = 0
	t.active = false
}

// sameCycle reports whether c is the table the run started with. Cycle
// tables are shared, so identity is enough.
func (t *toggleState) sameCycle(c []string) bool {
	return t.active && len(c) > 0 && len(t.cycle) > 0 && &t.cycle[0] == &c[0]
}

// Session is the input state of one focused field. It is not safe for
// concurrent use; Engine serializes access.
type Session struct {
	ID        uint64
	StartTime time.Time

	host    Host
	log     *logging.Logger
	text    *composing.Text
	machine *keymode.Machine
	tables  romkan.Tables
	conv    romkan.Converter
	toggle  toggleState
	preedit string

	keystrokes uint64
	commits    uint64
}

// SessionOptions configures a new session.
type SessionOptions struct {
	Field   keymode.FieldInfo
	Machine keymode.Options
	Tables  romkan.Tables
}

func newSession(id uint64, host Host, opts SessionOptions, log *logging.Logger) *Session {
	s := &Session{
		ID:        id,
		StartTime: time.Now(),
		host:      host,
		log:       log,
		text:      composing.New(),
		tables:    opts.Tables,
	}
	mopts := opts.Machine
	mopts.Logger = log
	s.machine = keymode.New((*machineHandler)(s), mopts)
	s.selectConverter()
	s.machine.SetField(opts.Field)
	s.sync()
	return s
}

// Mode returns the current key mode.
func (s *Session) Mode() keymode.KeyMode { return s.machine.Mode() }

// Machine exposes the key mode state machine for inspection.
func (s *Session) Machine() *keymode.Machine { return s.machine }

// Composing returns the pending text as displayed.
func (s *Session) Composing() string {
	return s.text.String(composing.LayerLetters)
}

// Raw returns the pending keystrokes before conversion.
func (s *Session) Raw() string {
	return s.text.String(composing.LayerRaw)
}

// InputChar handles a character typed on a QWERTY layout.
func (s *Session) InputChar(r rune) {
	s.OnKey(keymode.KeyCode(r))
}

// OnKey handles a 12-key pad key, a function key or a character code.
func (s *Session) OnKey(code keymode.KeyCode) {
	s.keystrokes++
	s.machine.OnKey(code)
	s.sync()
}

// ChangeMode switches the key mode. Pending text is committed.
func (s *Session) ChangeMode(mode keymode.KeyMode) error {
	err := s.machine.ChangeMode(mode)
	s.sync()
	return err
}

// NextMode cycles to the next key mode.
func (s *Session) NextMode() error {
	err := s.machine.NextMode()
	s.sync()
	return err
}

// Focus moves the session to another field of the same client. Pending
// text is committed to the old field first.
func (s *Session) Focus(f keymode.FieldInfo) {
	s.commit()
	s.machine.SetField(f)
	s.sync()
}

// SetHardKeyboardHidden reports attach or detach of a hardware keyboard.
func (s *Session) SetHardKeyboardHidden(hidden bool) {
	s.machine.SetHardKeyboardHidden(hidden)
	s.sync()
}

// SetKeyboardType switches between the QWERTY and 12-key layouts.
func (s *Session) SetKeyboardType(t keymode.KeyboardType) {
	s.machine.SetKeyboardType(t)
	s.sync()
}

// SetTables replaces the conversion tables, for example after a custom
// table file changed. Pending text is kept.
func (s *Session) SetTables(ts romkan.Tables) {
	s.tables = ts
	s.selectConverter()
}

// Commit flushes the composing text to the host.
func (s *Session) Commit() {
	s.commit()
	s.sync()
}

// CommitConversion commits the result of a conversion requested through
// Host.RequestConversion in place of the composing text.
func (s *Session) CommitConversion(result string) {
	if result != "" {
		s.host.CommitText(result)
		s.commits++
	}
	s.text.Clear()
	s.toggle.reset()
	s.sync()
}

// Reset discards the composing text.
func (s *Session) Reset() {
	s.text.Clear()
	s.toggle.reset()
	s.sync()
}

func (s *Session) commit() {
	if s.text.Empty() {
		return
	}
	committed := s.Composing()
	s.text.Clear()
	s.toggle.reset()
	if committed != "" {
		s.host.CommitText(committed)
		s.commits++
		s.log.Debug("committed", "text", committed, "mode", s.machine.Mode())
	}
}

// sync tells the machine whether text is pending and pushes a changed
// preedit to the host.
func (s *Session) sync() {
	s.machine.UpdateState(!s.text.Empty())
	if p := s.Composing(); p != s.preedit {
		s.preedit = p
		if pr, ok := s.host.(PreeditReporter); ok {
			pr.PreeditChanged(p)
		}
	}
}

// scriptFor maps a key mode to the script its characters are converted to.
// Number modes input final characters and have no script.
func scriptFor(m keymode.KeyMode) (romkan.Script, bool) {
	switch m {
	case keymode.FullHiragana:
		return romkan.ScriptHiragana, true
	case keymode.FullKatakana:
		return romkan.ScriptFullKatakana, true
	case keymode.HalfKatakana:
		return romkan.ScriptHalfKatakana, true
	case keymode.FullAlphabet:
		return romkan.ScriptFullAlphabet, true
	case keymode.HalfAlphabet:
		return romkan.ScriptHalfAlphabet, true
	default:
		return 0, false
	}
}

func (s *Session) selectConverter() {
	s.conv = nil
	if script, ok := scriptFor(s.machine.Mode()); ok {
		s.conv = s.tables.ConverterFor(script)
	}
}

func (s *Session) convert() {
	if s.conv == nil {
		return
	}
	if err := s.conv.Convert(s.text); err != nil && !errors.Is(err, romkan.ErrNoMatch) {
		s.log.Warn("conversion failed", "mode", s.machine.Mode(), "error", err)
	}
}

// machineHandler receives the key mode machine's events on behalf of the
// session, keeping the handler methods off the Session API.
type machineHandler Session

func (h *machineHandler) session() *Session { return (*Session)(h) }

func (h *machineHandler) OnEvent(e keymode.Event) {
	s := h.session()
	switch e.Kind {
	case keymode.EventCommitComposing:
		s.commit()

	case keymode.EventChangeMode:
		s.selectConverter()
		s.host.ModeChanged(e.Class, e.Mode)

	case keymode.EventToggleChar:
		s.toggleForward(e.Cycle)

	case keymode.EventReverseToggleChar:
		s.toggleBackward(e.Cycle)

	case keymode.EventReplaceChar:
		s.replaceLast(e.Replace)

	case keymode.EventTouchOtherKey:
		s.toggle.reset()

	case keymode.EventInputChar:
		s.inputChar(e.Char)

	case keymode.EventSoftKey:
		s.softKey(e.Key)

	case keymode.EventConvert:
		s.host.RequestConversion(s.Composing())
	}
}

func (h *machineHandler) ShowStatusIcon(icon keymode.Icon) {
	h.session().host.ShowStatusIcon(icon)
}

func (h *machineHandler) CursorCapsMode() bool {
	s := h.session()
	if cr, ok := s.host.(keymode.CapsReporter); ok {
		return s.text.Empty() && cr.CursorCapsMode()
	}
	return false
}

func (s *Session) toggleForward(cycle []string) {
	if len(cycle) == 0 {
		return
	}
	if !s.toggle.sameCycle(cycle) || s.text.Empty() {
		s.toggle = toggleState{cycle: cycle, active: true}
		s.text.Insert(cycle[0])
		return
	}
	s.toggle.index = (s.toggle.index + 1) % len(cycle)
	s.replaceToggled()
}

func (s *Session) toggleBackward(cycle []string) {
	if !s.toggle.sameCycle(cycle) || s.text.Empty() {
		return
	}
	s.toggle.index = (s.toggle.index + len(cycle) - 1) % len(cycle)
	s.replaceToggled()
}

func (s *Session) replaceToggled() {
	if err := s.text.ReplaceLast(s.toggle.cycle[s.toggle.index]); err != nil {
		s.log.Warn("toggle replace failed", "error", err)
		s.toggle.reset()
	}
}

func (s *Session) replaceLast(table map[string]string) {
	n := s.text.SegmentCount(composing.LayerLetters)
	if n == 0 {
		return
	}
	last, err := s.text.Segment(composing.LayerLetters, n-1)
	if err != nil {
		return
	}
	if next, ok := table[last.Text]; ok {
		if err := s.text.ReplaceLast(next); err != nil {
			s.log.Warn("replace failed", "error", err)
		}
	}
	s.toggle.reset()
}

func (s *Session) inputChar(ch string) {
	if s.machine.InputClass() == keymode.Instant {
		s.commit()
		s.host.CommitText(ch)
		s.commits++
		return
	}
	if ch == " " {
		s.commit()
		s.host.CommitText(ch)
		s.commits++
		return
	}
	s.toggle.reset()
	s.text.Insert(ch)
	s.convert()
}

func (s *Session) softKey(key keymode.SoftKey) {
	switch key {
	case keymode.SoftKeyBackspace:
		if s.text.DeleteLast() {
			s.toggle.reset()
			return
		}
	case keymode.SoftKeyEnter:
		if !s.text.Empty() {
			s.commit()
			return
		}
	case keymode.SoftKeyLeft, keymode.SoftKeyRight, keymode.SoftKeyBack:
		s.commit()
	}
	s.host.SendKey(key)
}
