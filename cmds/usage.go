package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true
		printCommand(name, command, 0)
	}
}

func printCommand(name string, command *Command, depth int) {
	indent := strings.Repeat("  ", depth)
	if command == nil {
		fmt.Fprintf(os.Stderr, "%s%s\n", indent, name)
		return
	}
	line := indent + name
	if len(command.aliases) > 0 {
		line += " (" + strings.Join(command.aliases, ", ") + ")"
	}
	if command.description != "" {
		line += "\n" + indent + "  " + command.description
	}
	fmt.Fprintln(os.Stderr, line)
	if command.subs != nil {
		for _, subname := range slices.Sorted(maps.Keys(command.subs)) {
			printCommand(subname, command.subs[subname], depth+1)
		}
	}
}
