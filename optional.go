package argparse

import "math"

// unbounded is the arity sentinel for list arguments: consume every token
// available in the window handed over by the engine.
const unbounded = math.MaxInt

// optionalSpec is the engine-facing contract shared by flag, value and list
// optionals. takes reports how many tokens the spec is willing to consume
// when matched; consume converts and stores tokens from the window that
// follows the matched flag token and reports how many it used.
type optionalSpec interface {
	Short() rune
	Long() string
	Desc() string

	takes() int
	consume(tokens []string) (int, error)
}

// optional carries the identity shared by every optional variant.
type optional struct {
	short rune
	long  string
	desc  string
}

// Short returns the single-character flag, or 0 if none was registered.
func (o *optional) Short() rune { return o.short }

// Long returns the long flag name, without the -- prefix.
func (o *optional) Long() string { return o.long }

// Desc returns the description shown in help output.
func (o *optional) Desc() string { return o.desc }

// label names the optional in error messages, preferring the long form and
// falling back to the short flag when no long name was registered.
func (o *optional) label() string {
	if o.long != "" {
		return "--" + o.long
	}
	return "-" + string(o.short)
}

// Flag is an optional argument without a value. It records how many times it
// was matched, so both repeated -v -v -v and the grouped form -vvv yield a
// count of three.
type Flag struct {
	optional
	count int
}

// Count returns the number of times the flag occurred.
func (f *Flag) Count() int { return f.count }

// IsSet reports whether the flag occurred at least once.
func (f *Flag) IsSet() bool { return f.count > 0 }

func (f *Flag) takes() int { return 0 }

func (f *Flag) consume([]string) (int, error) {
	f.count++
	return 0, nil
}

// Value is an optional argument holding at most one typed value.
type Value[T any] struct {
	optional
	conv ConvertFunc[T]
	val  *T
}

// Get returns the parsed value and whether one was present on the command
// line. The zero value and false are returned when the argument was absent.
func (v *Value[T]) Get() (T, bool) {
	if v.val == nil {
		var zero T
		return zero, false
	}
	return *v.val, true
}

func (v *Value[T]) takes() int { return 1 }

func (v *Value[T]) consume(tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, &Error{Code: MissingValue, Spec: v.label()}
	}
	parsed, err := v.conv(tokens[0])
	if err != nil {
		return 0, &Error{Code: ConversionFailure, Spec: v.label(), Token: tokens[0], err: err}
	}
	v.val = &parsed
	return 1, nil
}

// List is an optional argument accumulating an ordered sequence of typed
// values. It consumes every token up to the next flag-looking token or the
// end of the window.
type List[T any] struct {
	optional
	conv ConvertFunc[T]
	vals []T
	set  bool
}

// Values returns the accumulated values in command-line order. It returns nil
// when the argument never occurred; Present distinguishes that from an
// occurrence without surviving values.
func (l *List[T]) Values() []T { return l.vals }

// Present reports whether the argument occurred on the command line.
func (l *List[T]) Present() bool { return l.set }

func (l *List[T]) takes() int { return unbounded }

func (l *List[T]) consume(tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, &Error{Code: MissingValue, Spec: l.label()}
	}
	for _, tok := range tokens {
		parsed, err := l.conv(tok)
		if err != nil {
			return 0, &Error{Code: ConversionFailure, Spec: l.label(), Token: tok, err: err}
		}
		l.vals = append(l.vals, parsed)
	}
	l.set = true
	return len(tokens), nil
}
