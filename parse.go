package argparse

import (
	"errors"
	"strings"
)

// tokenKind classifies a single argv token before it is matched against the
// current command's registries.
type tokenKind int

const (
	// tokenPositional is any token that does not look like a flag, including
	// the lone dash. It is a candidate for a positional slot or a subcommand
	// name.
	tokenPositional tokenKind = iota
	// tokenShort is a single-dash token: one short flag or a group of them.
	tokenShort
	// tokenLong is a double-dash token addressing an optional by long name.
	tokenLong
)

func classify(tok string) tokenKind {
	if strings.HasPrefix(tok, "--") {
		return tokenLong
	}
	if len(tok) > 1 && tok[0] == '-' {
		return tokenShort
	}
	return tokenPositional
}

// flagBoundary returns the index of the first flag-classified token, or
// len(tokens) if there is none. It bounds the window handed to unbounded
// (list) arguments so they never swallow a later flag.
func flagBoundary(tokens []string) int {
	for i, tok := range tokens {
		if classify(tok) != tokenPositional {
			return i
		}
	}
	return len(tokens)
}

// parse consumes the window left to right and returns the number of tokens
// consumed. On failure it returns -1 and a coded error; values stored into
// already-satisfied specs are not rolled back, but the overall result must
// not be treated as usable.
func (c *Command) parse(window []string) (int, error) {
	consumed := 0
	for len(window) > 0 {
		tok := window[0]
		switch classify(tok) {
		case tokenLong:
			spec := c.findLong(strings.TrimPrefix(tok, "--"))
			if spec == nil {
				if tok == "--help" {
					return -1, ErrHelp
				}
				return -1, &Error{Code: UnknownOption, Command: c.name, Token: tok}
			}
			n, err := c.delegate(spec, window[1:])
			if err != nil {
				return -1, err
			}
			window = window[1+n:]
			consumed += 1 + n

		case tokenShort:
			n, err := c.parseShort(tok, window[1:])
			if err != nil {
				return -1, err
			}
			window = window[1+n:]
			consumed += 1 + n

		case tokenPositional:
			if req := c.nextUnsatisfied(); req != nil {
				n, err := c.delegateRequired(req, window)
				if err != nil {
					return -1, err
				}
				window = window[n:]
				consumed += n
				continue
			}
			sub := c.findSubCommand(tok)
			if sub == nil {
				return -1, c.formatUnexpectedToken(tok)
			}
			// Subcommand dispatch is exclusive: the rest of the window
			// belongs entirely to the subtree and its result is final.
			n, err := sub.parse(window[1:])
			if err != nil {
				return -1, err
			}
			return consumed + 1 + n, nil
		}
	}
	if req := c.nextUnsatisfied(); req != nil {
		return -1, &Error{Code: UnsatisfiedRequired, Command: c.name, Spec: "<" + req.Name() + ">"}
	}
	return consumed, nil
}

// delegate hands the window following a matched optional to its consume
// method. Unbounded specs get a window cut off at the next flag token; an
// arity-one spec takes the very next token verbatim.
func (c *Command) delegate(spec optionalSpec, rest []string) (int, error) {
	if spec.takes() == unbounded {
		rest = rest[:flagBoundary(rest)]
	}
	n, err := spec.consume(rest)
	if err != nil {
		return 0, c.annotate(err)
	}
	return n, nil
}

// delegateRequired offers the current positional slot the window up to the
// next flag token. window[0] is already known to be a non-flag token.
func (c *Command) delegateRequired(req requiredSpec, window []string) (int, error) {
	rest := window[:flagBoundary(window)]
	if req.takes() != unbounded {
		rest = rest[:1]
	}
	n, err := req.consume(rest)
	if err != nil {
		return 0, c.annotate(err)
	}
	return n, nil
}

// parseShort handles a single-dash token. A one-character token resolves to
// one short flag and may consume following tokens as its value; a
// multi-character token is a group and every member must be a zero-arity
// flag.
func (c *Command) parseShort(tok string, rest []string) (int, error) {
	runes := []rune(tok[1:])
	if len(runes) == 1 {
		spec := c.findShort(runes[0])
		if spec == nil {
			if tok == "-h" {
				return 0, ErrHelp
			}
			return 0, &Error{Code: UnknownOption, Command: c.name, Token: tok}
		}
		return c.delegate(spec, rest)
	}

	// Resolve the whole group before mutating anything, so a bad member
	// leaves no half-applied occurrence counts behind.
	specs := make([]optionalSpec, 0, len(runes))
	for _, r := range runes {
		spec := c.findShort(r)
		if spec == nil {
			return 0, &Error{Code: UnknownOption, Command: c.name, Spec: "-" + string(r), Token: tok}
		}
		if spec.takes() != 0 {
			return 0, &Error{Code: AmbiguousShortGroup, Command: c.name, Spec: "-" + string(r), Token: tok}
		}
		specs = append(specs, spec)
	}
	for _, spec := range specs {
		if _, err := spec.consume(nil); err != nil {
			return 0, c.annotate(err)
		}
	}
	return 0, nil
}

// annotate stamps the current command's name onto spec-level errors, which
// are created without tree context.
func (c *Command) annotate(err error) error {
	var coded *Error
	if errors.As(err, &coded) && coded.Command == "" {
		coded.Command = c.name
	}
	return err
}
