package keymode

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"kanaime/internal/logging"
)

// modeCycle is the order the mode key steps through.
var modeCycle = []KeyMode{FullHiragana, HalfAlphabet, HalfNumber}

// Options configures a Machine.
type Options struct {
	// Locale decides the default mode and the hardware keyboard mapping.
	Locale string
	// HardwareKeyboard is true when no on-screen keyboard is shown.
	HardwareKeyboard bool
	KeyboardType     KeyboardType
	// AutoCaps follows the field's capitalization in half-width alphabet.
	AutoCaps bool
	// EnglishPredict keeps the engine's word prediction on in half-width
	// alphabet instead of passing keys through directly.
	EnglishPredict bool
	Logger         *logging.Logger
}

// Machine tracks the key mode of one input session.
// It is not safe for concurrent use.
type Machine struct {
	handler Handler
	log     *logging.Logger

	japanese       bool
	autoCaps       bool
	englishPredict bool

	mode     KeyMode
	class    InputClass
	instant  []string
	cycle    []string
	prevKey  KeyCode
	shift    bool
	capsLock bool
	noInput  bool

	hardware   bool
	kbType     KeyboardType
	nullField  bool
	field      FieldInfo
	lastField  FieldInfo
	haveLast   bool
	constraint Constraint
}

// New returns a Machine in full-width hiragana reporting to h.
func New(h Handler, opts Options) *Machine {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	return &Machine{
		handler:        h,
		log:            log.WithComponent("keymode"),
		japanese:       IsJapanese(opts.Locale),
		autoCaps:       opts.AutoCaps,
		englishPredict: opts.EnglishPredict,
		mode:           FullHiragana,
		class:          Toggle,
		noInput:        true,
		hardware:       opts.HardwareKeyboard,
		kbType:         opts.KeyboardType,
		constraint:     NoConstraint,
	}
}

// Mode returns the current key mode.
func (m *Machine) Mode() KeyMode { return m.mode }

// InputClass returns the input class of the current mode.
func (m *Machine) InputClass() InputClass { return m.class }

// Icon returns the status icon of the current mode.
func (m *Machine) Icon() Icon { return IconFor(m.mode) }

// Shift reports whether the next character is capitalized.
func (m *Machine) Shift() bool { return m.shift }

// CapsLock reports whether shift is locked.
func (m *Machine) CapsLock() bool { return m.capsLock }

// KeyboardType returns the on-screen keyboard layout.
func (m *Machine) KeyboardType() KeyboardType { return m.kbType }

// HardwareKeyboard reports whether a hardware keyboard is in use.
func (m *Machine) HardwareKeyboard() bool { return m.hardware }

// Constraint returns the constraint of the focused field.
func (m *Machine) Constraint() Constraint { return m.constraint }

// ModeKeyEnabled reports whether the mode key may cycle modes. It is
// disabled for fields that take no text input.
func (m *Machine) ModeKeyEnabled() bool { return !m.nullField }

func (m *Machine) emit(e Event) {
	m.handler.OnEvent(e)
}

// commit flushes pending composing text, if any.
func (m *Machine) commit() {
	if !m.noInput {
		m.emit(Event{Kind: EventCommitComposing})
		m.noInput = true
	}
}

// FilterKeyMode returns the mode a request for requested actually leads to,
// or Invalid when the request must be ignored.
func (m *Machine) FilterKeyMode(requested KeyMode) KeyMode {
	target := requested
	if m.hardware && !requested.base() {
		target = HalfAlphabet
		if m.japanese && (requested == FullKatakana || requested == HalfKatakana) {
			target = FullHiragana
		}
	}

	if m.constraint.Allows(target) {
		return target
	}
	if m.constraint.Allows(m.mode) {
		return Invalid
	}
	return m.constraint.Limited[0]
}

// ChangeMode switches to requested after filtering it. Pending text is
// committed and caps lock is released. A rejected request changes nothing
// and returns ErrModeRejected.
func (m *Machine) ChangeMode(requested KeyMode) error {
	target := m.FilterKeyMode(requested)
	if target == Invalid {
		return fmt.Errorf("%w: %s while in %s", ErrModeRejected, requested, m.mode)
	}

	m.commit()
	if m.capsLock {
		m.emit(Event{Kind: EventSoftKey, Key: SoftKeyShiftUp})
		m.capsLock = false
	}
	m.shift = false
	m.mode = target
	m.prevKey = 0
	m.cycle = nil

	engine := m.configure(target)
	m.handler.ShowStatusIcon(IconFor(target))
	m.emit(Event{Kind: EventChangeMode, Class: m.class, Mode: engine})
	m.log.Debug("key mode changed", "mode", target, "class", m.class, "engine", engine)
	return nil
}

// configure sets the input class of mode and returns its engine mode.
func (m *Machine) configure(mode KeyMode) EngineMode {
	m.instant = nil
	switch mode {
	case FullHiragana:
		m.class = Toggle
		return EngineDefault
	case HalfAlphabet:
		m.class = Toggle
		if m.englishPredict {
			return EngineNoLv1Conv
		}
		return EngineDirect
	case FullNumber, HalfNumber, HalfPhone:
		m.class = Instant
		m.instant = instantTables[mode]
		if mode == HalfPhone {
			m.instant = instantTables[HalfNumber]
		}
		return EngineDirect
	case FullKatakana:
		m.class = Toggle
		return EngineFullKatakana
	case HalfKatakana:
		m.class = Toggle
		return EngineHalfKatakana
	default:
		m.class = Toggle
		return EngineDirect
	}
}

// DefaultMode returns the mode a newly focused field starts in.
func (m *Machine) DefaultMode() KeyMode {
	switch {
	case m.constraint.Preferred != Invalid:
		return m.constraint.Preferred
	case len(m.constraint.Limited) > 0:
		return m.constraint.Limited[0]
	case m.japanese:
		return FullHiragana
	default:
		return HalfAlphabet
	}
}

// SetDefaultMode changes to DefaultMode.
func (m *Machine) SetDefaultMode() error {
	return m.ChangeMode(m.DefaultMode())
}

// NextMode steps to the next allowed mode of the mode key cycle. From a
// mode outside the cycle it returns to the default mode instead.
func (m *Machine) NextMode() error {
	i := slices.Index(modeCycle, m.mode)
	if i < 0 {
		return m.SetDefaultMode()
	}
	for range modeCycle {
		i = (i + 1) % len(modeCycle)
		if target := m.FilterKeyMode(modeCycle[i]); target != Invalid {
			return m.ChangeMode(target)
		}
	}
	return fmt.Errorf("%w: no mode after %s", ErrModeRejected, m.mode)
}

// SetField applies the constraint of a newly focused field and selects the
// default mode when the field type changed.
func (m *Machine) SetField(f FieldInfo) {
	if !m.hardware {
		if f.Class == FieldNull {
			m.nullField = true
			return
		}
		m.nullField = false
	}

	m.field = f
	m.constraint = ConstraintFor(f, m.hardware)
	m.noInput = true
	m.capsLock = false

	if !m.haveLast || f != m.lastField {
		m.lastField, m.haveLast = f, true
		if err := m.SetDefaultMode(); err != nil {
			m.log.Debug("default mode not applied", "error", err)
		}
	}
	m.handler.ShowStatusIcon(IconFor(m.mode))
	m.updateShift()
}

// SetHardKeyboardHidden records whether the hardware keyboard went away.
// Switching keyboards falls back to the default mode when the field limits
// the modes or the current mode cannot be typed on the new keyboard.
func (m *Machine) SetHardKeyboardHidden(hidden bool) {
	hardware := !hidden
	if hardware {
		m.emit(Event{Kind: EventChangeMode, Class: m.class, Mode: EngineOptTypeQwerty})
	}
	if hardware == m.hardware {
		return
	}

	m.hardware = hardware
	limited := len(m.constraint.Limited) > 0
	m.constraint = ConstraintFor(m.field, hardware)
	if limited || !m.mode.base() {
		m.haveLast = false
		if err := m.SetDefaultMode(); err != nil {
			m.log.Debug("default mode not applied", "error", err)
		}
	}
}

// SetKeyboardType switches the on-screen layout and notifies the engine.
func (m *Machine) SetKeyboardType(t KeyboardType) {
	m.commit()
	m.kbType = t
	mode := EngineOptTypeQwerty
	if t == TwelveKey {
		mode = EngineOptType12Key
	}
	m.emit(Event{Kind: EventChangeMode, Class: m.class, Mode: mode})
}

// UpdateState tells the Machine whether the composing buffer holds text.
func (m *Machine) UpdateState(hasInput bool) {
	m.noInput = !hasInput
	if !m.capsLock {
		m.updateShift()
	}
}

// updateShift follows the field's caps mode in half-width alphabet.
func (m *Machine) updateShift() {
	if !m.autoCaps || m.mode != HalfAlphabet {
		return
	}
	cr, ok := m.handler.(CapsReporter)
	m.shift = ok && cr.CursorCapsMode()
}

// OnKey handles one key press.
func (m *Machine) OnKey(code KeyCode) {
	switch {
	case code == KeyToggleMode:
		if !m.nullField {
			if err := m.NextMode(); err != nil {
				m.log.Debug("mode key ignored", "error", err)
			}
		}

	case code == KeyBackspace:
		m.emit(Event{Kind: EventSoftKey, Key: SoftKeyBackspace})

	case code == KeyShift:
		switch {
		case m.capsLock:
			m.shift, m.capsLock = false, false
		case m.shift:
			m.capsLock = true
		default:
			m.shift = true
		}

	case code == KeyEnter:
		m.emit(Event{Kind: EventSoftKey, Key: SoftKeyEnter})

	case code == KeyReverse:
		if !m.noInput && m.cycle != nil {
			m.emit(Event{Kind: EventReverseToggleChar, Cycle: m.cycle})
		}

	case code == KeyKeyboardType:
		if m.kbType == TwelveKey {
			m.SetKeyboardType(Qwerty)
		} else {
			m.SetKeyboardType(TwelveKey)
		}

	case code == KeyEmoji:
		m.commit()
		m.emit(Event{Kind: EventChangeMode, Class: m.class, Mode: EngineSymbol})

	case code.toggles():
		m.onPadKey(code)

	case code == KeyAsterisk:
		m.onAsterisk()

	case code == KeySelectCase:
		m.shift = !m.shift

	case code == KeySpace:
		if m.mode == FullHiragana && !m.noInput {
			m.emit(Event{Kind: EventConvert})
		} else {
			m.emit(Event{Kind: EventInputChar, Char: " "})
		}

	case code == KeyEisuKana:
		m.emit(Event{Kind: EventChangeMode, Class: m.class, Mode: EngineEisuKana})

	case code == KeyClose:
		m.emit(Event{Kind: EventSoftKey, Key: SoftKeyBack})

	case code == KeyLeft:
		m.emit(Event{Kind: EventSoftKey, Key: SoftKeyLeft})

	case code == KeyRight:
		m.emit(Event{Kind: EventSoftKey, Key: SoftKeyRight})

	case code == KeyNop:

	default:
		if target, ok := switchTargets[code]; ok {
			if err := m.ChangeMode(target); err != nil {
				m.log.Debug("mode switch ignored", "error", err)
			}
			break
		}
		if code >= 0 && code <= utf8.MaxRune {
			r := rune(code)
			if m.shift {
				r = unicode.ToUpper(r)
			}
			m.emit(Event{Kind: EventInputChar, Char: string(r)})
			if !m.capsLock {
				m.shift = false
			}
		}
	}

	if !m.capsLock && code != KeyShift {
		m.updateShift()
	}
}

func (m *Machine) onPadKey(code KeyCode) {
	index, _ := tableIndex(code)
	if m.class == Instant {
		m.inputInstant(index)
		return
	}

	if m.prevKey != code {
		m.emit(Event{Kind: EventTouchOtherKey})
		if m.mode == HalfAlphabet && code == KeySharp {
			m.commit()
		}
	}

	table := cycleTables[m.mode]
	if table == nil || index >= len(table) {
		m.log.Error("cycle table not found", "mode", m.mode)
	} else {
		m.cycle = table[index]
		m.emit(Event{Kind: EventToggleChar, Cycle: m.cycle})
	}
	m.prevKey = code
}

func (m *Machine) onAsterisk() {
	index, _ := tableIndex(KeyAsterisk)
	if m.class == Instant {
		m.inputInstant(index)
		return
	}
	if m.noInput {
		return
	}

	table := replaceTables[m.mode]
	if table == nil {
		m.log.Error("replace table not found", "mode", m.mode)
		return
	}
	m.emit(Event{Kind: EventReplaceChar, Replace: table})
	m.prevKey = KeyAsterisk
}

func (m *Machine) inputInstant(index int) {
	m.commit()
	if index >= len(m.instant) {
		m.log.Error("instant table not found", "mode", m.mode)
		return
	}
	m.emit(Event{Kind: EventInputChar, Char: m.instant[index]})
}
