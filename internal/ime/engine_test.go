package ime

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanaime/internal/keymode"
	"kanaime/internal/logging"
	"kanaime/internal/romkan"
)

type fakeHost struct {
	commits     []string
	modes       []keymode.EngineMode
	icons       []keymode.Icon
	keys        []keymode.SoftKey
	conversions []string
	preedits    []string
	caps        bool
}

func (h *fakeHost) CommitText(text string) { h.commits = append(h.commits, text) }

func (h *fakeHost) ModeChanged(_ keymode.InputClass, mode keymode.EngineMode) {
	h.modes = append(h.modes, mode)
}

func (h *fakeHost) ShowStatusIcon(icon keymode.Icon) { h.icons = append(h.icons, icon) }
func (h *fakeHost) SendKey(key keymode.SoftKey)      { h.keys = append(h.keys, key) }
func (h *fakeHost) RequestConversion(reading string) {
	h.conversions = append(h.conversions, reading)
}
func (h *fakeHost) PreeditChanged(text string) { h.preedits = append(h.preedits, text) }
func (h *fakeHost) CursorCapsMode() bool       { return h.caps }

func (h *fakeHost) committed() string { return strings.Join(h.commits, "") }

func testEngine(opts keymode.Options) *Engine {
	log := logging.NewWithWriter(&logging.Config{Level: logging.LevelDebug}, io.Discard)
	if opts.Locale == "" {
		opts.Locale = "ja_JP.UTF-8"
	}
	return NewEngine(Options{Machine: opts, Logger: log})
}

func startSession(t *testing.T, opts keymode.Options, field keymode.FieldInfo) (*Engine, *Session, *fakeHost) {
	t.Helper()
	e := testEngine(opts)
	host := &fakeHost{}
	require.NoError(t, e.StartSession(host, field))

	var s *Session
	require.NoError(t, e.Do(func(sess *Session) error {
		s = sess
		return nil
	}))
	return e, s, host
}

var textField = keymode.FieldInfo{Class: keymode.FieldText}

func typeString(s *Session, in string) {
	for _, r := range in {
		s.InputChar(r)
	}
}

func TestEngineSessionLifecycle(t *testing.T) {
	e := testEngine(keymode.Options{})
	host := &fakeHost{}

	assert.False(t, e.HasActiveSession())
	assert.Nil(t, e.GetSessionInfo())
	assert.ErrorIs(t, e.Do(func(*Session) error { return nil }), ErrNoSession)

	require.NoError(t, e.StartSession(host, textField))
	assert.True(t, e.HasActiveSession())
	assert.ErrorIs(t, e.StartSession(host, textField), ErrSessionActive)

	require.NoError(t, e.Do(func(s *Session) error {
		typeString(s, "ka")
		return nil
	}))

	info, err := e.EndSession()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.ID)
	assert.Equal(t, uint64(2), info.Keystrokes)
	assert.Equal(t, uint64(1), info.Commits)
	assert.Equal(t, "か", host.committed(), "pending text is committed when the session ends")

	_, err = e.EndSession()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, e.StartSession(host, textField))
	assert.Equal(t, uint64(2), e.GetSessionInfo().ID)
}

func TestEngineStartSessionNilHost(t *testing.T) {
	e := testEngine(keymode.Options{})
	assert.Error(t, e.StartSession(nil, textField))
}

func TestSessionDefaultMode(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		field  keymode.FieldInfo
		want   keymode.KeyMode
	}{
		{"japanese text", "ja_JP.UTF-8", textField, keymode.FullHiragana},
		{"english text", "en_US.UTF-8", textField, keymode.HalfAlphabet},
		{"number", "ja_JP", keymode.FieldInfo{Class: keymode.FieldNumber}, keymode.HalfNumber},
		{"password", "ja_JP", keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationPassword}, keymode.HalfAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s, host := startSession(t, keymode.Options{Locale: tt.locale}, tt.field)
			assert.Equal(t, tt.want, s.Mode())
			require.NotEmpty(t, host.icons)
			assert.Equal(t, keymode.IconFor(tt.want), host.icons[len(host.icons)-1])
		})
	}
}

func TestSessionRomajiInput(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	typeString(s, "nihongo")
	assert.Equal(t, "にほんご", s.Composing())
	assert.Equal(t, "nihongo", s.Raw())
	assert.Equal(t, "にほんご", host.preedits[len(host.preedits)-1])
	assert.Empty(t, host.commits)

	s.OnKey(keymode.KeyEnter)
	assert.Equal(t, []string{"にほんご"}, host.commits)
	assert.Empty(t, s.Composing())
	assert.Equal(t, "", host.preedits[len(host.preedits)-1])
	assert.Empty(t, host.keys, "enter with pending text only commits")

	s.OnKey(keymode.KeyEnter)
	assert.Equal(t, []keymode.SoftKey{keymode.SoftKeyEnter}, host.keys)
}

func TestSessionPendingConsonant(t *testing.T) {
	_, s, _ := startSession(t, keymode.Options{}, textField)

	typeString(s, "kak")
	assert.Equal(t, "かk", s.Composing())
	typeString(s, "ka")
	assert.Equal(t, "かっか", s.Composing())
}

func TestSessionBackspace(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	typeString(s, "kana")
	assert.Equal(t, "かな", s.Composing())

	s.OnKey(keymode.KeyBackspace)
	assert.Equal(t, "か", s.Composing())
	assert.Equal(t, "ka", s.Raw())

	s.OnKey(keymode.KeyBackspace)
	assert.Empty(t, s.Composing())
	assert.Empty(t, host.keys)

	s.OnKey(keymode.KeyBackspace)
	assert.Equal(t, []keymode.SoftKey{keymode.SoftKeyBackspace}, host.keys)
}

func TestSessionToggleInput(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{KeyboardType: keymode.TwelveKey}, textField)

	s.OnKey(keymode.Key1)
	assert.Equal(t, "あ", s.Composing())
	s.OnKey(keymode.Key1)
	assert.Equal(t, "い", s.Composing())
	s.OnKey(keymode.Key2)
	assert.Equal(t, "いか", s.Composing())
	s.OnKey(keymode.Key2)
	s.OnKey(keymode.Key2)
	assert.Equal(t, "いく", s.Composing())

	s.OnKey(keymode.KeyReverse)
	assert.Equal(t, "いき", s.Composing())

	s.OnKey(keymode.KeyAsterisk)
	assert.Equal(t, "いぎ", s.Composing())

	s.OnKey(keymode.Key2)
	assert.Equal(t, "いぎか", s.Composing(), "a pad key after the replace key starts a new character")

	s.OnKey(keymode.KeyEnter)
	assert.Equal(t, "いぎか", host.committed())
}

func TestSessionToggleWraps(t *testing.T) {
	_, s, _ := startSession(t, keymode.Options{KeyboardType: keymode.TwelveKey}, textField)

	for range 6 {
		s.OnKey(keymode.Key2)
	}
	assert.Equal(t, "か", s.Composing())

	s.OnKey(keymode.KeyReverse)
	assert.Equal(t, "こ", s.Composing())
}

func TestSessionReverseWithoutToggle(t *testing.T) {
	_, s, _ := startSession(t, keymode.Options{}, textField)

	typeString(s, "ka")
	s.OnKey(keymode.KeyReverse)
	assert.Equal(t, "か", s.Composing())
}

func TestSessionConversionRequest(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	typeString(s, "kana")
	s.OnKey(keymode.KeySpace)
	assert.Equal(t, []string{"かな"}, host.conversions)
	assert.Equal(t, "かな", s.Composing(), "the reading stays until the result arrives")

	s.CommitConversion("仮名")
	assert.Equal(t, []string{"仮名"}, host.commits)
	assert.Empty(t, s.Composing())

	s.OnKey(keymode.KeySpace)
	assert.Equal(t, []string{"仮名", " "}, host.commits, "space without pending text inputs a space")
}

func TestSessionSpaceInAlphabet(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)
	require.NoError(t, s.ChangeMode(keymode.HalfAlphabet))

	typeString(s, "ab")
	assert.Equal(t, "ab", s.Composing())
	s.OnKey(keymode.KeySpace)
	assert.Equal(t, []string{"ab", " "}, host.commits)
	assert.Empty(t, host.conversions)
}

func TestSessionInstantInput(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{KeyboardType: keymode.TwelveKey}, textField)

	s.OnKey(keymode.Key2)
	require.NoError(t, s.ChangeMode(keymode.HalfNumber))
	assert.Equal(t, []string{"か"}, host.commits, "mode change commits pending text")

	s.OnKey(keymode.Key1)
	s.OnKey(keymode.Key1)
	s.OnKey(keymode.KeySharp)
	assert.Equal(t, []string{"か", "1", "1", "#"}, host.commits)
	assert.Empty(t, s.Composing())

	require.NoError(t, s.ChangeMode(keymode.FullNumber))
	s.InputChar('7')
	assert.Equal(t, "7", host.commits[len(host.commits)-1])
	s.OnKey(keymode.Key0)
	assert.Equal(t, "０", host.commits[len(host.commits)-1])
}

func TestSessionModeConverters(t *testing.T) {
	tests := []struct {
		mode keymode.KeyMode
		in   string
		want string
	}{
		{keymode.FullHiragana, "kyakka", "きゃっか"},
		{keymode.FullKatakana, "kyakka", "キャッカ"},
		{keymode.HalfKatakana, "ga", "ｶﾞ"},
		{keymode.FullAlphabet, "KA", "ＫＡ"},
		{keymode.HalfAlphabet, "ka", "ka"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			_, s, host := startSession(t, keymode.Options{}, textField)
			require.NoError(t, s.ChangeMode(tt.mode))
			typeString(s, tt.in)
			assert.Equal(t, tt.want, s.Composing())

			s.Commit()
			assert.Equal(t, tt.want, host.committed())
		})
	}
}

func TestSessionFocusLimitedField(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	typeString(s, "a")
	s.Focus(keymode.FieldInfo{Class: keymode.FieldText, Variation: keymode.VariationPassword})
	assert.Equal(t, []string{"あ"}, host.commits)
	assert.Equal(t, keymode.HalfAlphabet, s.Mode())

	err := s.ChangeMode(keymode.FullHiragana)
	assert.ErrorIs(t, err, keymode.ErrModeRejected)
	assert.Equal(t, keymode.HalfAlphabet, s.Mode())

	require.NoError(t, s.NextMode())
	assert.Equal(t, keymode.HalfNumber, s.Mode())
}

func TestSessionModeChangedReported(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	require.NoError(t, s.ChangeMode(keymode.FullKatakana))
	assert.Equal(t, keymode.EngineFullKatakana, host.modes[len(host.modes)-1])

	s.SetKeyboardType(keymode.TwelveKey)
	assert.Equal(t, keymode.EngineOptType12Key, host.modes[len(host.modes)-1])

	s.OnKey(keymode.KeyEmoji)
	assert.Equal(t, keymode.EngineSymbol, host.modes[len(host.modes)-1])
}

func TestSessionAutoCaps(t *testing.T) {
	e := testEngine(keymode.Options{AutoCaps: true})
	host := &fakeHost{caps: true}
	require.NoError(t, e.StartSession(host, textField))

	require.NoError(t, e.Do(func(s *Session) error {
		if err := s.ChangeMode(keymode.HalfAlphabet); err != nil {
			return err
		}
		typeString(s, "ab")
		assert.Equal(t, "Ab", s.Composing())
		return nil
	}))
}

func TestSessionSoftKeysCommit(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	typeString(s, "ka")
	s.OnKey(keymode.KeyLeft)
	assert.Equal(t, []string{"か"}, host.commits)
	assert.Equal(t, []keymode.SoftKey{keymode.SoftKeyLeft}, host.keys)
}

func TestSessionReset(t *testing.T) {
	_, s, host := startSession(t, keymode.Options{}, textField)

	typeString(s, "ka")
	s.Reset()
	assert.Empty(t, s.Composing())
	assert.Empty(t, host.commits)
}

func TestEngineSetTables(t *testing.T) {
	custom, err := romkan.LoadTable(strings.NewReader(`{
		"name": "custom",
		"base": "hiragana",
		"entries": {"q": "く"}
	}`))
	require.NoError(t, err)

	e := testEngine(keymode.Options{})
	host := &fakeHost{}
	require.NoError(t, e.StartSession(host, textField))

	e.SetTables(romkan.Tables{Hiragana: custom})
	assert.Equal(t, "custom", e.Tables().Hiragana.Name())
	assert.Equal(t, romkan.FullKatakana, e.Tables().FullKatakana)

	require.NoError(t, e.Do(func(s *Session) error {
		typeString(s, "qaka")
		assert.Equal(t, "くあか", s.Composing())
		return nil
	}))
}

func TestScriptFor(t *testing.T) {
	for _, m := range []keymode.KeyMode{keymode.FullNumber, keymode.HalfNumber, keymode.HalfPhone} {
		_, ok := scriptFor(m)
		assert.False(t, ok, m.String())
	}
	script, ok := scriptFor(keymode.HalfKatakana)
	assert.True(t, ok)
	assert.Equal(t, romkan.ScriptHalfKatakana, script)
}
