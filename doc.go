// Package argparse implements a command-line argument parser with nested
// subcommands, typed optional flags, values and lists, and typed required
// positional arguments.
//
// A command tree is built once with the Add* registration functions, parsed
// exactly once with [Parser.Parse], and queried afterwards through the typed
// handles returned at registration time. The package prioritizes a small,
// predictable parsing model: tokens are consumed left to right, grouped short
// flags such as -vvv expand to repeated occurrences, and a non-flag token is
// matched first against unsatisfied positional slots and only then against
// subcommand names.
package argparse
