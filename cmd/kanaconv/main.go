// Command kanaconv converts romaji typed as text into kana.
//
// Each argument, or each line of standard input when there are no
// arguments, is typed key by key into an input session and the committed
// text is printed. Pending input is committed at the end of a line.
//
// Usage:
//
//	kanaconv [flags] [text ...]
//
// Examples:
//
//	# Hiragana
//	kanaconv nihongo
//
//	# Half-width katakana from stdin
//	echo kyakka | kanaconv -mode half-katakana
//
//	# 12-key pad: digits cycle, '<' reverses, '>' confirms, '*' adds dakuten
//	kanaconv -keypad '22*>2'
//
//	# Custom table for one script
//	kanaconv -table hiragana=old-kana.json wi
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"kanaime/internal/config"
	"kanaime/internal/ime"
	"kanaime/internal/keymode"
	"kanaime/internal/logging"
	"kanaime/internal/romkan"
)

var (
	// Version information (set at build time)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// tableFlag collects repeated -table script=path values.
type tableFlag map[romkan.Script]string

func (f tableFlag) String() string {
	var parts []string
	for s, p := range f {
		parts = append(parts, s.String()+"="+p)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (f tableFlag) Set(v string) error {
	name, path, ok := strings.Cut(v, "=")
	if !ok || path == "" {
		return errors.New("expected script=path")
	}
	script, err := romkan.ParseScript(name)
	if err != nil {
		return err
	}
	switch script {
	case romkan.ScriptHiragana, romkan.ScriptFullKatakana, romkan.ScriptHalfKatakana:
	default:
		return fmt.Errorf("script %s has no romaji table", script)
	}
	f[script] = path
	return nil
}

// overrides returns the table paths to lay over the file config.
func (f tableFlag) overrides() config.TablesConfig {
	return config.TablesConfig{
		Hiragana:     f[romkan.ScriptHiragana],
		FullKatakana: f[romkan.ScriptFullKatakana],
		HalfKatakana: f[romkan.ScriptHalfKatakana],
	}
}

type options struct {
	mode   keymode.KeyMode
	keypad bool
}

func main() {
	tables := tableFlag{}
	modeStr := flag.String("mode", keymode.FullHiragana.String(), "key mode: full-hiragana, full-katakana, half-katakana, full-alphabet, half-alphabet, full-number, half-number")
	keypad := flag.Bool("keypad", false, "read input as 12-key pad presses")
	configPath := flag.String("config", "", "config file (default: search standard locations)")
	locale := flag.String("locale", "", "locale deciding the default key mode (default: from config or environment)")
	verbose := flag.Bool("verbose", false, "log key mode events to stderr")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Var(tables, "table", "custom romaji table as script=path (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kanaconv - Convert romaji to kana\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [text ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeypad keys:\n")
		fmt.Fprintf(os.Stderr, "  0-9  character keys\n")
		fmt.Fprintf(os.Stderr, "  *    dakuten, handakuten and small kana\n")
		fmt.Fprintf(os.Stderr, "  #    punctuation\n")
		fmt.Fprintf(os.Stderr, "  <    reverse toggle\n")
		fmt.Fprintf(os.Stderr, "  >    confirm the pending character\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("kanaconv %s (commit: %s, built: %s)\n", version, commit, buildTime)
		os.Exit(0)
	}

	mode, err := keymode.ParseKeyMode(*modeStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.LevelWarn
	if *verbose {
		logCfg.Level = logging.LevelDebug
	}
	log := logging.NewWithWriter(logCfg, os.Stderr)

	flags := &config.Config{
		Input:  config.InputConfig{Locale: *locale},
		Tables: tables.overrides(),
	}
	cfg, err := loadConfig(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := options{mode: mode, keypad: *keypad}
	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		in = strings.NewReader(strings.Join(flag.Args(), "\n") + "\n")
	}

	if err := run(cfg, opts, in, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, or the environment when there is
// none, and lays the non-zero settings of flags over it.
func loadConfig(path string, flags *config.Config) (*config.Config, error) {
	if path == "" {
		path = config.FindConfigFile()
	}
	base := config.LoadFromEnv()
	if path != "" {
		var err error
		if base, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	cfg := config.Merge(base, flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run types every line of in into a session and writes the committed text
// of each line to out.
func run(cfg *config.Config, opts options, in io.Reader, out io.Writer, log *logging.Logger) error {
	machine, err := cfg.MachineOptions()
	if err != nil {
		return err
	}
	// A hardware keyboard only reaches the base modes.
	machine.HardwareKeyboard = false
	machine.KeyboardType = keymode.Qwerty
	if opts.keypad {
		machine.KeyboardType = keymode.TwelveKey
	}

	tables, err := cfg.Tables.Load()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	host := &writerHost{w: w, log: log}
	engine := ime.NewEngine(ime.Options{Machine: machine, Tables: tables, Logger: log})
	if err := engine.StartSession(host, keymode.FieldInfo{Class: keymode.FieldText}); err != nil {
		return err
	}
	defer engine.EndSession()

	err = engine.Do(func(s *ime.Session) error {
		if err := s.ChangeMode(opts.mode); err != nil {
			return fmt.Errorf("mode %s: %w", opts.mode, err)
		}

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			for _, r := range scanner.Text() {
				s.OnKey(keyFor(r, opts.keypad))
				if reading, ok := host.conversion(); ok {
					s.CommitConversion(reading)
				}
			}
			s.Commit()
			w.WriteByte('\n')
		}
		return scanner.Err()
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

var keypadKeys = map[rune]keymode.KeyCode{
	'1': keymode.Key1,
	'2': keymode.Key2,
	'3': keymode.Key3,
	'4': keymode.Key4,
	'5': keymode.Key5,
	'6': keymode.Key6,
	'7': keymode.Key7,
	'8': keymode.Key8,
	'9': keymode.Key9,
	'0': keymode.Key0,
	'*': keymode.KeyAsterisk,
	'#': keymode.KeySharp,
	'<': keymode.KeyReverse,
	'>': keymode.KeyRight,
}

func keyFor(r rune, keypad bool) keymode.KeyCode {
	if r == ' ' {
		return keymode.KeySpace
	}
	if keypad {
		if code, ok := keypadKeys[r]; ok {
			return code
		}
	}
	return keymode.KeyCode(r)
}

// writerHost prints committed text. Conversion requests commit the
// reading unchanged.
type writerHost struct {
	w       *bufio.Writer
	log     *logging.Logger
	reading string
	pending bool
}

func (h *writerHost) CommitText(text string) {
	h.w.WriteString(text)
}

func (h *writerHost) ModeChanged(class keymode.InputClass, mode keymode.EngineMode) {
	h.log.Debug("mode changed", "class", class.String(), "engine_mode", int(mode))
}

func (h *writerHost) ShowStatusIcon(icon keymode.Icon) {
	h.log.Debug("status icon", "icon", icon.Label())
}

func (h *writerHost) SendKey(key keymode.SoftKey) {
	h.log.Debug("key sent", "key", key.String())
}

func (h *writerHost) RequestConversion(reading string) {
	h.reading, h.pending = reading, true
}

func (h *writerHost) conversion() (string, bool) {
	reading, ok := h.reading, h.pending
	h.reading, h.pending = "", false
	return reading, ok
}
