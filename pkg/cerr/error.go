package cerr

import (
	"errors"
	"fmt"
)

// Error is the error type every builtin and the executor itself returns.
// Verb is the builtin name ("cd", "kill", ...), or "" for parse errors,
// which the executor formats without a verb segment.
type Error struct {
	Code Code
	Verb string
	Msg  string
	Err  error
}

// New builds an Error. underlying may be nil.
func New(code Code, verb, msg string, underlying error) *Error {
	return &Error{Code: code, Verb: verb, Msg: msg, Err: underlying}
}

// Error renders the exact "smash error: ..." text the executor writes
// to stdout: "smash error: <verb>: <message>" for builtin errors, or
// "smash error: <message>" when Verb is empty (parse errors).
func (e *Error) Error() string {
	if e.Verb == "" {
		return fmt.Sprintf("smash error: %s", e.Msg)
	}
	return fmt.Sprintf("smash error: %s: %s", e.Verb, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is a *cerr.Error of the given code.
func IsCode(err error, code Code) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}
