package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	w := tabwriter.NewWriter(p.output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "usage: venvboot [words...]")
	printCommands(w, p.commands, 1)
	w.Flush()
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share one *Command; list it once under its shortest name
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}
	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, ns := range names {
		slices.SortFunc(ns, func(a, b string) int {
			if len(a) != len(b) {
				return len(a) - len(b)
			}
			return strings.Compare(a, b)
		})
		entries = append(entries, entry{ns, command})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(strings.TrimLeft(a.names[0], "-!"), strings.TrimLeft(b.names[0], "-!"))
	})
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		if e.command.Description == "" && len(e.command.Subs) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s%s\t%s\n", indent, strings.Join(e.names, ", "), e.command.Description)
		if len(e.command.Subs) > 0 {
			printCommands(w, e.command.Subs, depth+1)
		}
	}
}
