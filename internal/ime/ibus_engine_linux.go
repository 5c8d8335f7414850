//go:build linux

package ime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/godbus/dbus/v5"

	"kanaime/internal/keymode"
	"kanaime/internal/logging"
)

// IBus D-Bus constants
const (
	IBusFactoryPath      = "/org/freedesktop/IBus/Factory"
	IBusEnginePathPrefix = "/org/freedesktop/IBus/Engine/"
	IBusFactoryInterface = "org.freedesktop.IBus.Factory"
	IBusEngineInterface  = "org.freedesktop.IBus.Engine"
	IBusServiceInterface = "org.freedesktop.IBus.Service"
	KanaimeBusName       = "org.freedesktop.IBus.Kanaime"
	KanaimeEngineName    = "kanaime"
)

// IBus enum values used on the wire.
const (
	ibusAttrTypeUnderline   uint32 = 1
	ibusAttrUnderlineSingle uint32 = 1
	ibusPreeditClear        uint32 = 0
	ibusPropTypeRadio       uint32 = 2
	ibusPropTypeMenu        uint32 = 3
	ibusPropStateUnchecked  uint32 = 0
	ibusPropStateChecked    uint32 = 1
)

// ibusText is the D-Bus form of IBusText, (sa{sv}sv).
type ibusText struct {
	Name        string
	Attachments map[string]dbus.Variant
	Text        string
	AttrList    dbus.Variant
}

type ibusAttrList struct {
	Name        string
	Attachments map[string]dbus.Variant
	Attributes  []dbus.Variant
}

type ibusAttribute struct {
	Name        string
	Attachments map[string]dbus.Variant
	Type        uint32
	Value       uint32
	StartIndex  uint32
	EndIndex    uint32
}

type ibusProperty struct {
	Name        string
	Attachments map[string]dbus.Variant
	Key         string
	Type        uint32
	Label       dbus.Variant
	Icon        string
	Tooltip     dbus.Variant
	Sensitive   bool
	Visible     bool
	State       uint32
	SubProps    dbus.Variant
	Symbol      dbus.Variant
}

type ibusPropList struct {
	Name        string
	Attachments map[string]dbus.Variant
	Props       []dbus.Variant
}

// newIBusText builds an IBusText variant. Preedit text is underlined.
func newIBusText(text string, underline bool) dbus.Variant {
	attrs := []dbus.Variant{}
	if underline && text != "" {
		attrs = append(attrs, dbus.MakeVariant(ibusAttribute{
			Name:        "IBusAttribute",
			Attachments: map[string]dbus.Variant{},
			Type:        ibusAttrTypeUnderline,
			Value:       ibusAttrUnderlineSingle,
			EndIndex:    uint32(utf8.RuneCountInString(text)),
		}))
	}
	return dbus.MakeVariant(ibusText{
		Name:        "IBusText",
		Attachments: map[string]dbus.Variant{},
		Text:        text,
		AttrList: dbus.MakeVariant(ibusAttrList{
			Name:        "IBusAttrList",
			Attachments: map[string]dbus.Variant{},
			Attributes:  attrs,
		}),
	})
}

// textFromVariant extracts the string of an IBusText variant.
func textFromVariant(v dbus.Variant) (string, bool) {
	fields, ok := v.Value().([]interface{})
	if !ok || len(fields) < 3 {
		return "", false
	}
	s, ok := fields[2].(string)
	return s, ok
}

func newPropList(props ...ibusProperty) dbus.Variant {
	vs := make([]dbus.Variant, len(props))
	for i, p := range props {
		vs[i] = dbus.MakeVariant(p)
	}
	return dbus.MakeVariant(ibusPropList{
		Name:        "IBusPropList",
		Attachments: map[string]dbus.Variant{},
		Props:       vs,
	})
}

// modeMenu builds the input mode menu property with icon as its label.
func modeMenu(icon keymode.Icon) ibusProperty {
	items := make([]ibusProperty, 0, len(modeProperties))
	for _, m := range modeProperties {
		state := ibusPropStateUnchecked
		if keymode.IconFor(m) == icon {
			state = ibusPropStateChecked
		}
		items = append(items, newProperty(modePropertyKey(m), ibusPropTypeRadio, m.String(), state, newPropList()))
	}
	return newProperty(propInputMode, ibusPropTypeMenu, icon.Label(), ibusPropStateUnchecked, newPropList(items...))
}

func newProperty(key string, typ uint32, label string, state uint32, sub dbus.Variant) ibusProperty {
	return ibusProperty{
		Name:        "IBusProperty",
		Attachments: map[string]dbus.Variant{},
		Key:         key,
		Type:        typ,
		Label:       newIBusText(label, false),
		Tooltip:     newIBusText(label, false),
		Sensitive:   true,
		Visible:     true,
		State:       state,
		SubProps:    sub,
		Symbol:      newIBusText(label, false),
	}
}

// IBusEngineImpl exposes an Engine as an IBus engine over D-Bus.
type IBusEngineImpl struct {
	conn   *dbus.Conn
	engine *Engine
	log    *logging.Logger
	config IBusConfig
	host   *ibusHost

	// emit sends an engine signal; replaced in tests.
	emit func(signal string, args ...interface{}) error

	mu       sync.Mutex
	path     dbus.ObjectPath
	engineID uint32
	enabled  bool
	field    keymode.FieldInfo
	sentence bool
	stats    IBusEngineStats
}

// IBusConfig holds IBus engine configuration.
type IBusConfig struct {
	// Address of the IBus bus. Empty connects to the session bus.
	Address string

	// BusName is requested when running as a standalone component.
	BusName string
}

// DefaultIBusConfig returns sensible defaults.
func DefaultIBusConfig() IBusConfig {
	return IBusConfig{BusName: KanaimeBusName}
}

// IBusEngineStats tracks engine statistics.
type IBusEngineStats struct {
	KeyEvents       uint64
	KeysConsumed    uint64
	SessionsStarted uint64
	SessionsEnded   uint64
	FocusChanges    uint64
	LastKeyTime     time.Time
}

// NewIBusEngine wraps engine for IBus.
func NewIBusEngine(engine *Engine, config IBusConfig, log *logging.Logger) *IBusEngineImpl {
	if log == nil {
		log = logging.Default()
	}
	impl := &IBusEngineImpl{
		engine: engine,
		log:    log.WithComponent("ibus"),
		config: config,
		field:  keymode.FieldInfo{Class: keymode.FieldText},
		path:   IBusEnginePathPrefix + KanaimeEngineName,
	}
	impl.host = &ibusHost{impl: impl}
	impl.emit = impl.emitSignal
	return impl
}

// Start connects to the bus and exports the engine factory.
func (e *IBusEngineImpl) Start(ctx context.Context) error {
	var err error
	if e.config.Address != "" {
		e.conn, err = dbus.Connect(e.config.Address, dbus.WithContext(ctx))
	} else {
		e.conn, err = dbus.SessionBus()
	}
	if err != nil {
		return fmt.Errorf("failed to connect to bus: %w", err)
	}

	factory := &IBusFactory{engine: e}
	if err := e.conn.Export(factory, IBusFactoryPath, IBusFactoryInterface); err != nil {
		return fmt.Errorf("export factory: %w", err)
	}
	if err := e.conn.Export(e, e.path, IBusEngineInterface); err != nil {
		return fmt.Errorf("export engine: %w", err)
	}

	if e.config.BusName != "" {
		reply, err := e.conn.RequestName(e.config.BusName, dbus.NameFlagDoNotQueue)
		if err != nil {
			return fmt.Errorf("failed to request bus name: %w", err)
		}
		if reply != dbus.RequestNameReplyPrimaryOwner {
			return errors.New("bus name already taken")
		}
	}

	e.log.Info("ibus engine started", "bus_name", e.config.BusName)
	return nil
}

// Stop ends the active session and closes the bus connection.
func (e *IBusEngineImpl) Stop() error {
	e.endSession()
	if e.conn != nil {
		return e.conn.Close()
	}
	return nil
}

func (e *IBusEngineImpl) emitSignal(signal string, args ...interface{}) error {
	if e.conn == nil {
		return errors.New("not connected")
	}
	e.mu.Lock()
	path := e.path
	e.mu.Unlock()
	return e.conn.Emit(path, IBusEngineInterface+"."+signal, args...)
}

func (e *IBusEngineImpl) signal(name string, args ...interface{}) {
	if err := e.emit(name, args...); err != nil {
		e.log.Warn("signal not sent", "signal", name, "error", err)
	}
}

func (e *IBusEngineImpl) ensureSession() {
	if e.engine.HasActiveSession() {
		return
	}
	e.mu.Lock()
	field := e.field
	e.mu.Unlock()

	if err := e.engine.StartSession(e.host, field); err != nil {
		if !errors.Is(err, ErrSessionActive) {
			e.log.Error("failed to start session", "error", err)
		}
		return
	}
	e.mu.Lock()
	e.stats.SessionsStarted++
	e.mu.Unlock()
}

func (e *IBusEngineImpl) endSession() {
	info, err := e.engine.EndSession()
	if err != nil {
		return
	}
	e.mu.Lock()
	e.stats.SessionsEnded++
	e.mu.Unlock()
	e.log.Debug("session ended", "session_id", info.ID, "keystrokes", info.Keystrokes)
}

// ProcessKeyEvent handles key press/release events from IBus.
// Returns true if the key was consumed, false to pass through.
func (e *IBusEngineImpl) ProcessKeyEvent(keyval, keycode, state uint32) (handled bool, _ *dbus.Error) {
	defer e.log.Recover("ProcessKeyEvent")

	if state&IBusReleaseMask != 0 {
		return false, nil
	}
	e.ensureSession()

	err := e.engine.Do(func(s *Session) error {
		code, ok := translateKey(keyval, state)
		if !ok {
			handled = e.untranslated(s, keyval, state)
			return nil
		}
		e.host.begin()
		s.OnKey(code)
		if reading, ok := e.host.conversion(); ok {
			s.CommitConversion(reading)
		}
		handled = !e.host.passed
		return nil
	})
	if err != nil {
		e.log.Warn("key dropped", "keyval", keyval, "error", err)
		return false, nil
	}

	e.mu.Lock()
	e.stats.KeyEvents++
	if handled {
		e.stats.KeysConsumed++
	}
	e.stats.LastKeyTime = time.Now()
	e.mu.Unlock()
	return handled, nil
}

// untranslated handles a key the session has no code for. Escape drops
// the composing text; any other key commits it and goes to the client.
func (e *IBusEngineImpl) untranslated(s *Session, keyval, state uint32) bool {
	if s.Composing() == "" {
		return false
	}
	if keyval == GDKEscape && state&(IBusControlMask|IBusMod1Mask|IBusMod4Mask) == 0 {
		s.Reset()
		return true
	}
	s.Commit()
	return false
}

// FocusIn is called when the engine gains input focus.
func (e *IBusEngineImpl) FocusIn() *dbus.Error {
	defer e.log.Recover("FocusIn")

	e.mu.Lock()
	e.stats.FocusChanges++
	e.mu.Unlock()

	e.ensureSession()
	icon := keymode.IconNone
	_ = e.engine.Do(func(s *Session) error {
		icon = s.Machine().Icon()
		return nil
	})
	e.signal("RegisterProperties", newPropList(modeMenu(icon)))
	return nil
}

// FocusOut is called when the engine loses input focus.
func (e *IBusEngineImpl) FocusOut() *dbus.Error {
	defer e.log.Recover("FocusOut")
	e.endSession()
	return nil
}

// Enable is called when the engine is enabled.
func (e *IBusEngineImpl) Enable() *dbus.Error {
	e.mu.Lock()
	e.enabled = true
	e.mu.Unlock()
	e.log.Debug("enabled")
	return nil
}

// Disable is called when the engine is disabled.
func (e *IBusEngineImpl) Disable() *dbus.Error {
	defer e.log.Recover("Disable")

	e.mu.Lock()
	e.enabled = false
	e.mu.Unlock()
	e.endSession()
	return nil
}

// Reset drops the composing text.
func (e *IBusEngineImpl) Reset() *dbus.Error {
	defer e.log.Recover("Reset")
	_ = e.engine.Do(func(s *Session) error {
		s.Reset()
		return nil
	})
	return nil
}

// SetCapabilities informs about client capabilities.
func (e *IBusEngineImpl) SetCapabilities(caps uint32) *dbus.Error {
	return nil
}

// SetContentType selects the key mode constraints of the focused field.
func (e *IBusEngineImpl) SetContentType(purpose, hints uint32) *dbus.Error {
	defer e.log.Recover("SetContentType")

	field := fieldForPurpose(purpose)
	e.mu.Lock()
	e.field = field
	e.mu.Unlock()

	_ = e.engine.Do(func(s *Session) error {
		s.Focus(field)
		return nil
	})
	e.log.Debug("content type", "purpose", purpose, "hints", hints)
	return nil
}

// SetCursorLocation informs about cursor position.
func (e *IBusEngineImpl) SetCursorLocation(x, y, w, h int32) *dbus.Error {
	return nil
}

// SetSurroundingText provides the text around the cursor, used for
// automatic capitalization.
func (e *IBusEngineImpl) SetSurroundingText(text dbus.Variant, cursorPos, anchorPos uint32) *dbus.Error {
	s, ok := textFromVariant(text)
	if !ok {
		return nil
	}
	e.mu.Lock()
	e.sentence = sentenceStart(s, cursorPos)
	e.mu.Unlock()
	return nil
}

// PropertyActivate switches the key mode from the panel menu.
func (e *IBusEngineImpl) PropertyActivate(propName string, state uint32) *dbus.Error {
	defer e.log.Recover("PropertyActivate")

	mode, ok := parseModeProperty(propName)
	if !ok || state != ibusPropStateChecked {
		return nil
	}
	err := e.engine.Do(func(s *Session) error {
		return s.ChangeMode(mode)
	})
	if err != nil {
		e.log.Info("mode change ignored", "mode", mode, "error", err)
	}
	return nil
}

// PageUp handles page up in candidate list.
func (e *IBusEngineImpl) PageUp() *dbus.Error { return nil }

// PageDown handles page down in candidate list.
func (e *IBusEngineImpl) PageDown() *dbus.Error { return nil }

// CursorUp handles cursor up in candidate list.
func (e *IBusEngineImpl) CursorUp() *dbus.Error { return nil }

// CursorDown handles cursor down in candidate list.
func (e *IBusEngineImpl) CursorDown() *dbus.Error { return nil }

// CandidateClicked handles candidate selection.
func (e *IBusEngineImpl) CandidateClicked(index, button, state uint32) *dbus.Error { return nil }

// Destroy is called by the IBus daemon when the engine object goes away.
func (e *IBusEngineImpl) Destroy() *dbus.Error {
	e.endSession()
	return nil
}

// GetStats returns engine statistics.
func (e *IBusEngineImpl) GetStats() IBusEngineStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// ibusHost is the Host of sessions driven over IBus. Its methods run with
// the engine lock held.
type ibusHost struct {
	impl *IBusEngineImpl

	passed     bool
	reading    string
	converting bool
}

// begin resets the per key state.
func (h *ibusHost) begin() {
	h.passed = false
	h.reading = ""
	h.converting = false
}

// conversion returns a reading whose conversion was requested during the
// last key.
func (h *ibusHost) conversion() (string, bool) {
	return h.reading, h.converting
}

func (h *ibusHost) CommitText(text string) {
	h.impl.signal("CommitText", newIBusText(text, false))
}

func (h *ibusHost) PreeditChanged(text string) {
	h.impl.signal("UpdatePreeditText",
		newIBusText(text, true),
		uint32(utf8.RuneCountInString(text)),
		text != "",
		ibusPreeditClear,
	)
}

func (h *ibusHost) ModeChanged(class keymode.InputClass, mode keymode.EngineMode) {
	h.impl.log.Debug("engine mode", "class", class, "engine", mode)
}

func (h *ibusHost) ShowStatusIcon(icon keymode.Icon) {
	h.impl.signal("UpdateProperty", dbus.MakeVariant(modeMenu(icon)))
}

// SendKey leaves the key event to the client application.
func (h *ibusHost) SendKey(key keymode.SoftKey) {
	if key != keymode.SoftKeyShiftUp {
		h.passed = true
	}
}

// RequestConversion has no dictionary behind it; the reading is committed
// as typed once the key is handled.
func (h *ibusHost) RequestConversion(reading string) {
	h.reading = reading
	h.converting = true
}

func (h *ibusHost) CursorCapsMode() bool {
	h.impl.mu.Lock()
	defer h.impl.mu.Unlock()
	return h.impl.sentence
}

// IBusFactory implements the IBus Factory D-Bus interface.
type IBusFactory struct {
	engine *IBusEngineImpl
}

// CreateEngine creates a new engine instance for IBus.
func (f *IBusFactory) CreateEngine(engineName string) (dbus.ObjectPath, *dbus.Error) {
	f.engine.log.Debug("create engine", "name", engineName)

	if engineName != KanaimeEngineName {
		return "", dbus.NewError("org.freedesktop.IBus.NoEngine",
			[]interface{}{"Unknown engine: " + engineName})
	}

	f.engine.mu.Lock()
	f.engine.engineID++
	path := dbus.ObjectPath(fmt.Sprintf("%s%d", IBusEnginePathPrefix, f.engine.engineID))
	f.engine.path = path
	f.engine.mu.Unlock()

	if f.engine.conn != nil {
		if err := f.engine.conn.Export(f.engine, path, IBusEngineInterface); err != nil {
			return "", dbus.MakeFailedError(err)
		}
		if err := f.engine.conn.Export(f.engine, path, IBusServiceInterface); err != nil {
			return "", dbus.MakeFailedError(err)
		}
	}
	return path, nil
}
