package argparse

// requiredSpec is the engine-facing contract for positional arguments.
// Positional slots are offered tokens strictly in registration order, and the
// parse only succeeds once every slot reports satisfied.
type requiredSpec interface {
	Name() string
	Desc() string

	takes() int
	consume(tokens []string) (int, error)
	satisfied() bool
}

// positional carries the identity shared by both required variants.
type positional struct {
	name string
	desc string
}

// Name returns the positional argument's name.
func (p *positional) Name() string { return p.name }

// Desc returns the description shown in help output.
func (p *positional) Desc() string { return p.desc }

// Required is a positional argument holding exactly one typed value.
type Required[T any] struct {
	positional
	conv ConvertFunc[T]
	val  *T
}

// Get returns the parsed value and whether the slot was filled. After a
// successful parse the slot is always filled.
func (r *Required[T]) Get() (T, bool) {
	if r.val == nil {
		var zero T
		return zero, false
	}
	return *r.val, true
}

func (r *Required[T]) takes() int { return 1 }

func (r *Required[T]) consume(tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, &Error{Code: MissingValue, Spec: "<" + r.name + ">"}
	}
	parsed, err := r.conv(tokens[0])
	if err != nil {
		return 0, &Error{Code: ConversionFailure, Spec: "<" + r.name + ">", Token: tokens[0], err: err}
	}
	r.val = &parsed
	return 1, nil
}

func (r *Required[T]) satisfied() bool { return r.val != nil }

// RequiredList is a positional argument accumulating one or more typed
// values. It greedily consumes every non-flag token remaining in the window,
// which is why a command may register at most one and nothing after it.
type RequiredList[T any] struct {
	positional
	conv ConvertFunc[T]
	vals []T
	set  bool
}

// Values returns the accumulated values in command-line order.
func (l *RequiredList[T]) Values() []T { return l.vals }

// Present reports whether the slot consumed any tokens.
func (l *RequiredList[T]) Present() bool { return l.set }

func (l *RequiredList[T]) takes() int { return unbounded }

func (l *RequiredList[T]) consume(tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, &Error{Code: MissingValue, Spec: "<" + l.name + ">"}
	}
	for _, tok := range tokens {
		parsed, err := l.conv(tok)
		if err != nil {
			return 0, &Error{Code: ConversionFailure, Spec: "<" + l.name + ">", Token: tok, err: err}
		}
		l.vals = append(l.vals, parsed)
	}
	l.set = true
	return len(tokens), nil
}

func (l *RequiredList[T]) satisfied() bool { return l.set }
