package argparse

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by [Parser.Parse] when the arguments contain -h or
// --help. The caller is expected to print [Usage] output and stop.
var ErrHelp = errors.New("argparse: help requested")

// ErrAlreadyParsed is returned when Parse is called a second time on the same
// tree. Re-parsing would double-append list values, so it is rejected.
var ErrAlreadyParsed = errors.New("argparse: command tree has already been parsed")

// ErrorCode identifies the category of a registration or parse failure.
type ErrorCode int

const (
	// DuplicateArgument reports a short flag, long flag, positional name or
	// subcommand name collision at registration time.
	DuplicateArgument ErrorCode = iota + 1
	// UnknownOption reports a long or short flag token that matches no
	// registered optional.
	UnknownOption
	// MissingValue reports a value or list argument that matched but had no
	// tokens left to consume.
	MissingValue
	// ConversionFailure reports a token that could not be converted to the
	// argument's type.
	ConversionFailure
	// UnsatisfiedRequired reports a positional slot still unfilled when the
	// token window was exhausted.
	UnsatisfiedRequired
	// UnexpectedToken reports a non-flag token that matched neither a
	// positional slot nor a subcommand name.
	UnexpectedToken
	// AmbiguousShortGroup reports a grouped short token containing a
	// value-taking option.
	AmbiguousShortGroup
)

func (c ErrorCode) String() string {
	switch c {
	case DuplicateArgument:
		return "duplicate argument"
	case UnknownOption:
		return "unknown option"
	case MissingValue:
		return "missing value"
	case ConversionFailure:
		return "conversion failure"
	case UnsatisfiedRequired:
		return "required argument not satisfied"
	case UnexpectedToken:
		return "unexpected argument"
	case AmbiguousShortGroup:
		return "ambiguous short flag group"
	default:
		return "unknown error"
	}
}

// Error is the coded error reported for registration and parse failures. It
// carries enough context to build a user-facing message: the command that was
// being parsed, the argument involved and the offending token, each of which
// may be empty depending on the code.
type Error struct {
	Code    ErrorCode
	Command string
	Spec    string
	Token   string

	err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "argparse: "
	if e.Command != "" {
		msg += fmt.Sprintf("command %q: ", e.Command)
	}
	msg += e.Code.String()
	if e.Spec != "" {
		msg += fmt.Sprintf(" %s", e.Spec)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(": %q", e.Token)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same code, allowing
// errors.Is checks against bare code sentinels like &Error{Code: UnknownOption}.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}
