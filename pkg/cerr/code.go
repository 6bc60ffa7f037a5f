// Package cerr defines the error taxonomy used across smash's builtins
// and executor: a small set of kinds, carried alongside the verb and
// message that make up the "smash error: verb: message" text the
// executor writes to stdout.
package cerr

// Code classifies an error without requiring callers to match message
// text. Builtins return errors wrapping one of these so the executor
// and tests can branch on kind (cerr.IsCode) instead of substrings.
type Code int

const (
	OK Code = iota
	// Parse covers invalid token sequences, unbalanced quotes, and
	// misplaced & or &&.
	Parse
	// Arity covers a builtin invoked with the wrong number of arguments.
	Arity
	// Lookup covers missing jobs, missing aliases, and "command not found".
	Lookup
	// Filesystem covers missing paths, wrong kind, and open failures.
	Filesystem
	// Subprocess covers fork/exec failures.
	Subprocess
	// OldPWDUnset is the special case for `cd -` before any `cd` has run.
	OldPWDUnset
	// BadArgs covers malformed arguments that aren't an arity mismatch
	// (e.g. kill's signal/id pair, alias's name='value' format).
	BadArgs
	// Internal covers anything else (should be rare).
	Internal
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case Parse:
		return "parse"
	case Arity:
		return "arity"
	case Lookup:
		return "lookup"
	case Filesystem:
		return "filesystem"
	case Subprocess:
		return "subprocess"
	case OldPWDUnset:
		return "oldpwd_unset"
	case BadArgs:
		return "bad_args"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}
