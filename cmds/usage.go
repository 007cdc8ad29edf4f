package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		if cmd == nil || seen[cmd] || slices.Contains(cmd.Aliases, name) {
			continue
		}
		seen[cmd] = true
		names := append([]string{name}, cmd.Aliases...)
		line := strings.Repeat("  ", depth) + strings.Join(names, ", ")
		for _, arg := range cmd.ArgNames {
			line += " <" + arg + ">"
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
