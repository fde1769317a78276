package argparse

// Parser is the root of a command tree. It behaves like any other [Command]
// for registration, but its Parse method folds the engine's tokens-consumed
// result into a plain error.
type Parser struct {
	Command
	parsed bool
}

// New returns a parser whose embedded root command carries the program name
// and description used in help output.
func New(name, desc string) *Parser {
	return &Parser{Command: Command{name: name, desc: desc}}
}

// Parse runs the engine over args, which must not include the program name
// (pass os.Args[1:]). It returns nil on success, [ErrHelp] if -h or --help
// occurs where the engine expects a flag and the current command has no
// option registered under that name, and a coded [Error] describing the
// first failure otherwise. A -h or --help token consumed as an option's
// value, or matching an option the tree registered itself, is handled like
// any other token.
//
// A tree is parsed exactly once: values accumulated in list arguments are
// never reset, so a second call returns [ErrAlreadyParsed].
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return ErrAlreadyParsed
	}
	p.parsed = true

	if _, err := p.Command.parse(args); err != nil {
		return err
	}
	return nil
}
