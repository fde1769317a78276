package argparse

import (
	"fmt"
	"strings"

	"github.com/TumbleOwlee/argparse-go/pkg/textutil"
)

// Usage renders help text for a command from the tree's names, descriptions
// and arities. It only reads the tree and can be called before or after
// parsing.
func Usage(c *Command) string {
	if c == nil {
		return ""
	}

	var b strings.Builder

	if lines := textutil.Wrap(c.desc, 80); len(lines) > 0 {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n  ")
	b.WriteString(c.path())
	if len(c.optionals) > 0 {
		b.WriteString(" [options]")
	}
	for _, r := range c.requireds {
		if r.takes() == unbounded {
			fmt.Fprintf(&b, " <%s...>", r.Name())
		} else {
			fmt.Fprintf(&b, " <%s>", r.Name())
		}
	}
	if len(c.subcommands) > 0 {
		b.WriteString(" <command>")
	}
	b.WriteString("\n\n")

	if len(c.subcommands) > 0 {
		b.WriteString("Commands:\n")
		var rows []usageRow
		for _, sub := range c.subcommands {
			rows = append(rows, usageRow{name: sub.name, desc: sub.desc})
		}
		writeAligned(&b, rows)
		b.WriteString("\n")
	}

	if len(c.requireds) > 0 {
		b.WriteString("Arguments:\n")
		var rows []usageRow
		for _, r := range c.requireds {
			rows = append(rows, usageRow{name: "<" + r.Name() + ">", desc: r.Desc()})
		}
		writeAligned(&b, rows)
		b.WriteString("\n")
	}

	if len(c.optionals) > 0 {
		b.WriteString("Options:\n")
		var rows []usageRow
		for _, o := range c.optionals {
			rows = append(rows, usageRow{name: formatOptional(o), desc: o.Desc()})
		}
		writeAligned(&b, rows)
		b.WriteString("\n")
	}

	if len(c.subcommands) > 0 {
		fmt.Fprintf(&b, "Use \"%s <command> --help\" for more information about a command.\n", c.path())
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatOptional(o optionalSpec) string {
	var parts []string
	if o.Short() != 0 {
		parts = append(parts, "-"+string(o.Short()))
	}
	if o.Long() != "" {
		parts = append(parts, "--"+o.Long())
	}
	name := strings.Join(parts, ", ")
	switch o.takes() {
	case 1:
		name += " <value>"
	case unbounded:
		name += " <value...>"
	}
	return name
}

type usageRow struct {
	name string
	desc string
}

// writeAligned prints rows as two columns, wrapping descriptions at 80
// characters with continuation lines indented under the description column.
func writeAligned(b *strings.Builder, rows []usageRow) {
	maxLen := 0
	for _, row := range rows {
		if len(row.name) > maxLen {
			maxLen = len(row.name)
		}
	}
	nameWidth := maxLen + 4
	wrapWidth := 80 - nameWidth

	for _, row := range rows {
		// Wrap returns nothing for an empty or whitespace-only description.
		lines := textutil.Wrap(row.desc, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", row.name)
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(row.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", row.name, padding, lines[0])

		indent := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}
