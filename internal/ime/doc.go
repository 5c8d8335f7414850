// Package ime drives kana input sessions for the focused text field.
//
// # Architecture Overview
//
// An Engine owns at most one Session, the input state of the focused
// field. A Session ties together the composing text, the key mode state
// machine and the converter of the current key mode:
//
//	Key Event → Machine → Event → Session → Converter
//	                                 ↓
//	                         Host (commit, preedit, status icon)
//
// Keys typed on a QWERTY layout enter the composing text as raw
// characters and are converted to kana as they arrive. Keys of the 12-key
// pad cycle or replace the pending character, or input a final character
// in the number modes.
//
// # Front Ends
//
// Platform integration implements Host:
//
//	┌──────────┬──────────────────────────────────────────────┐
//	│ Platform │ Front end                                    │
//	├──────────┼──────────────────────────────────────────────┤
//	│ Linux    │ IBus engine over D-Bus (ibus_engine_linux.go) │
//	│ Any      │ kanaconv command line converter              │
//	└──────────┴──────────────────────────────────────────────┘
//
// Conversion of a kana reading to kanji is left to the host through
// Host.RequestConversion.
//
// # Thread Safety
//
// Engine is safe for concurrent use. A Session is not; it is reached
// through Engine.Do, which holds the engine lock while the session runs
// and calls back into its Host.
package ime
