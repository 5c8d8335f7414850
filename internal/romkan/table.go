package romkan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxKeyLength is the longest romaji key a table may hold, in characters.
const MaxKeyLength = 4

// Table maps lowercase romaji keys to kana. A Table never changes after it
// is built and may be shared by any number of sessions.
type Table struct {
	name    string
	entries map[string]string
}

func newTable(name string, entries map[string]string) *Table {
	return &Table{name: name, entries: entries}
}

// Built-in tables.
var (
	Hiragana     = newTable("hiragana", hiraganaEntries)
	FullKatakana = newTable("full-katakana", fullKatakanaEntries)
	HalfKatakana = newTable("half-katakana", halfKatakanaEntries)
)

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Lookup returns the kana for a lowercase key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns a copy of all keys in unspecified order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// tableFile is the JSON layout of a user supplied table.
type tableFile struct {
	Name    string            `json:"name"`
	Base    string            `json:"base,omitempty"`
	Entries map[string]string `json:"entries"`
}

//go:embed table.schema.json
var tableSchemaJSON []byte

const tableSchemaURL = "kanaime://schema/romkan-table.json"

var (
	tableSchemaOnce sync.Once
	tableSchema     *jsonschema.Schema
	tableSchemaErr  error
)

func compiledTableSchema() (*jsonschema.Schema, error) {
	tableSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(tableSchemaURL, bytes.NewReader(tableSchemaJSON)); err != nil {
			tableSchemaErr = fmt.Errorf("add table schema: %w", err)
			return
		}
		tableSchema, tableSchemaErr = compiler.Compile(tableSchemaURL)
	})
	return tableSchema, tableSchemaErr
}

// LoadTable reads a user table in JSON form:
//
//	{"name": "my-table", "base": "hiragana", "entries": {"wi": "ゐ"}}
//
// The document is validated against the embedded table schema. When base
// names a built-in table its entries are copied first and then overridden.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	schema, err := compiledTableSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}

	var tf tableFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}

	entries := make(map[string]string, len(tf.Entries))
	if tf.Base != "" {
		base, ok := builtinTable(tf.Base)
		if !ok {
			return nil, fmt.Errorf("invalid table: unknown base %q", tf.Base)
		}
		maps.Copy(entries, base.entries)
	}
	for k, v := range tf.Entries {
		if strings.ToLower(k) != k {
			return nil, errors.New("invalid table: keys must be lowercase")
		}
		entries[k] = v
	}
	return newTable(tf.Name, entries), nil
}

func builtinTable(name string) (*Table, bool) {
	for _, t := range []*Table{Hiragana, FullKatakana, HalfKatakana} {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}
