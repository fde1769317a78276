package argparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/TumbleOwlee/argparse-go/pkg/suggest"
)

// Command is a named node in the command tree. It owns its optional
// arguments, its positional arguments (in declaration order) and its
// subcommands. The tree is built once, before parsing, and registration
// failures panic immediately rather than surfacing later as parse errors.
type Command struct {
	name string
	desc string

	optionals   []optionalSpec
	requireds   []requiredSpec
	subcommands []*Command

	parent *Command
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// Desc returns the command's description.
func (c *Command) Desc() string { return c.desc }

// Subcommands returns the registered subcommands in registration order. The
// returned slice is a copy; mutating it does not affect the tree.
func (c *Command) Subcommands() []*Command { return slices.Clone(c.subcommands) }

// AddCommand registers a subcommand and returns it for further registration.
// Subcommand names share a namespace with positional argument names, since
// both are matched against non-flag tokens; a collision panics with a
// DuplicateArgument error.
func (c *Command) AddCommand(name, desc string) *Command {
	if name == "" || strings.ContainsRune(name, ' ') {
		panic(fmt.Errorf("argparse: command %q: invalid subcommand name %q", c.name, name))
	}
	c.checkPositionalName(name)
	sub := &Command{name: name, desc: desc, parent: c}
	c.subcommands = append(c.subcommands, sub)
	return sub
}

// AddFlag registers an optional flag identified by a short character, a long
// name, or both. The returned handle reports the occurrence count after
// parsing.
func (c *Command) AddFlag(short rune, long, desc string) *Flag {
	f := &Flag{optional: optional{short: short, long: long, desc: desc}}
	c.registerOptional(f)
	return f
}

// AddValue registers an optional argument taking a single value of type T.
// It panics if no converter is registered for T.
func AddValue[T any](c *Command, short rune, long, desc string) *Value[T] {
	v := &Value[T]{optional: optional{short: short, long: long, desc: desc}, conv: mustConverter[T]()}
	c.registerOptional(v)
	return v
}

// AddList registers an optional argument accumulating values of type T until
// the next flag token or the end of the input.
func AddList[T any](c *Command, short rune, long, desc string) *List[T] {
	l := &List[T]{optional: optional{short: short, long: long, desc: desc}, conv: mustConverter[T]()}
	c.registerOptional(l)
	return l
}

// AddRequired registers a positional argument of type T. Positional slots are
// filled in registration order and every slot must be filled for the parse to
// succeed.
func AddRequired[T any](c *Command, name, desc string) *Required[T] {
	r := &Required[T]{positional: positional{name: name, desc: desc}, conv: mustConverter[T]()}
	c.registerRequired(r)
	return r
}

// AddRequiredList registers a positional argument consuming one or more
// values of type T. Because it greedily takes every remaining non-flag token,
// it must be the last positional in its command.
func AddRequiredList[T any](c *Command, name, desc string) *RequiredList[T] {
	l := &RequiredList[T]{positional: positional{name: name, desc: desc}, conv: mustConverter[T]()}
	c.registerRequired(l)
	return l
}

func (c *Command) registerOptional(s optionalSpec) {
	if s.Long() == "" && s.Short() == 0 {
		panic(fmt.Errorf("argparse: command %q: optional argument needs a short or long name", c.name))
	}
	for _, o := range c.optionals {
		if s.Long() != "" && o.Long() == s.Long() {
			panic(&Error{Code: DuplicateArgument, Command: c.name, Spec: "--" + s.Long()})
		}
		if s.Short() != 0 && o.Short() == s.Short() {
			panic(&Error{Code: DuplicateArgument, Command: c.name, Spec: "-" + string(s.Short())})
		}
	}
	c.optionals = append(c.optionals, s)
}

func (c *Command) registerRequired(r requiredSpec) {
	if r.Name() == "" {
		panic(fmt.Errorf("argparse: command %q: positional argument needs a name", c.name))
	}
	if last := c.lastRequired(); last != nil && last.takes() == unbounded {
		// The list slot already swallows every remaining non-flag token, so
		// anything registered after it could never be matched.
		panic(fmt.Errorf("argparse: command %q: positional %q is unreachable after list positional %q",
			c.name, r.Name(), last.Name()))
	}
	c.checkPositionalName(r.Name())
	c.requireds = append(c.requireds, r)
}

// checkPositionalName enforces the shared namespace between positional
// argument names and subcommand names within one command.
func (c *Command) checkPositionalName(name string) {
	for _, r := range c.requireds {
		if r.Name() == name {
			panic(&Error{Code: DuplicateArgument, Command: c.name, Spec: name})
		}
	}
	for _, sub := range c.subcommands {
		if sub.name == name {
			panic(&Error{Code: DuplicateArgument, Command: c.name, Spec: name})
		}
	}
}

func (c *Command) lastRequired() requiredSpec {
	if len(c.requireds) == 0 {
		return nil
	}
	return c.requireds[len(c.requireds)-1]
}

func (c *Command) findLong(name string) optionalSpec {
	for _, o := range c.optionals {
		if o.Long() != "" && o.Long() == name {
			return o
		}
	}
	return nil
}

func (c *Command) findShort(r rune) optionalSpec {
	for _, o := range c.optionals {
		if o.Short() != 0 && o.Short() == r {
			return o
		}
	}
	return nil
}

func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.subcommands {
		if sub.name == name {
			return sub
		}
	}
	return nil
}

// nextUnsatisfied returns the first positional slot, in registration order,
// that has not consumed its tokens yet.
func (c *Command) nextUnsatisfied() requiredSpec {
	for _, r := range c.requireds {
		if !r.satisfied() {
			return r
		}
	}
	return nil
}

func (c *Command) formatUnexpectedToken(token string) error {
	var known []string
	for _, sub := range c.subcommands {
		known = append(known, sub.name)
	}
	err := &Error{Code: UnexpectedToken, Command: c.name, Token: token}
	if suggestions := suggest.Similar(token, known, 3); len(suggestions) > 0 {
		err.err = fmt.Errorf("did you mean one of these?\n\t%s", strings.Join(suggestions, "\n\t"))
	}
	return err
}

// path returns the space-joined command names from the root down to c.
func (c *Command) path() string {
	var names []string
	for cur := c; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}
