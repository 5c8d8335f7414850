package ime

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"kanaime/internal/keymode"
	"kanaime/internal/logging"
	"kanaime/internal/romkan"
)

var (
	// ErrSessionActive is returned by StartSession while a session is open.
	ErrSessionActive = errors.New("session already active; call EndSession first")
	// ErrNoSession is returned when an operation needs an open session.
	ErrNoSession = errors.New("no active session")
)

// Options configures an Engine.
type Options struct {
	// Machine is passed to the key mode machine of every session.
	Machine keymode.Options
	// Tables are the romaji tables sessions convert with. Zero fields
	// fall back to the built-in tables.
	Tables romkan.Tables
	// Logger defaults to logging.Default().
	Logger *logging.Logger
}

// SessionInfo describes the active session.
type SessionInfo struct {
	ID         uint64
	StartTime  time.Time
	Duration   time.Duration
	Mode       keymode.KeyMode
	Keystrokes uint64
	Commits    uint64
}

// Engine owns the input session of the focused field. All methods are
// safe for concurrent use; front ends call into it from their own
// dispatch goroutines.
type Engine struct {
	mu      sync.Mutex
	opts    Options
	log     *logging.Logger
	session *Session
	nextID  uint64
}

// NewEngine creates an engine without an active session.
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	opts.Tables = withDefaults(opts.Tables)
	return &Engine{
		opts: opts,
		log:  opts.Logger.WithComponent("ime"),
	}
}

func withDefaults(ts romkan.Tables) romkan.Tables {
	def := romkan.DefaultTables()
	if ts.Hiragana == nil {
		ts.Hiragana = def.Hiragana
	}
	if ts.FullKatakana == nil {
		ts.FullKatakana = def.FullKatakana
	}
	if ts.HalfKatakana == nil {
		ts.HalfKatakana = def.HalfKatakana
	}
	return ts
}

// StartSession opens a session for a newly focused field.
func (e *Engine) StartSession(host Host, field keymode.FieldInfo) error {
	if host == nil {
		return errors.New("nil host")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		return ErrSessionActive
	}

	e.nextID++
	id := e.nextID
	e.session = newSession(id, host, SessionOptions{
		Field:   field,
		Machine: e.opts.Machine,
		Tables:  e.opts.Tables,
	}, e.log.WithSession(id))
	e.log.Debug("session started", "session_id", id, "mode", e.session.Mode())
	return nil
}

// EndSession commits pending text and closes the session.
func (e *Engine) EndSession() (*SessionInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil, ErrNoSession
	}

	e.session.Commit()
	info := e.session.info()
	e.session = nil
	e.log.Debug("session ended",
		"session_id", info.ID,
		"keystrokes", info.Keystrokes,
		"commits", info.Commits,
		"duration", info.Duration,
	)
	return info, nil
}

// HasActiveSession reports whether a session is open.
func (e *Engine) HasActiveSession() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil
}

// Do runs fn with the active session while holding the engine lock.
func (e *Engine) Do(fn func(*Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return ErrNoSession
	}
	return fn(e.session)
}

// GetSessionInfo returns information about the active session, or nil.
func (e *Engine) GetSessionInfo() *SessionInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}
	return e.session.info()
}

// SetTables replaces the romaji tables for the active and future
// sessions.
func (e *Engine) SetTables(ts romkan.Tables) {
	ts = withDefaults(ts)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Tables = ts
	if e.session != nil {
		e.session.SetTables(ts)
	}
	e.log.Info("romaji tables updated",
		"hiragana", ts.Hiragana.Name(),
		"full_katakana", ts.FullKatakana.Name(),
		"half_katakana", ts.HalfKatakana.Name(),
	)
}

// Tables returns the tables new sessions use.
func (e *Engine) Tables() romkan.Tables {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.Tables
}

func (s *Session) info() *SessionInfo {
	return &SessionInfo{
		ID:         s.ID,
		StartTime:  s.StartTime,
		Duration:   time.Since(s.StartTime),
		Mode:       s.machine.Mode(),
		Keystrokes: s.keystrokes,
		Commits:    s.commits,
	}
}

// String implements fmt.Stringer.
func (i *SessionInfo) String() string {
	return fmt.Sprintf("session %d: %s, %d keystrokes, %d commits", i.ID, i.Mode, i.Keystrokes, i.Commits)
}
