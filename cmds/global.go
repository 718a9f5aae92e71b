package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor. Errors are fatal to the
// process since a bad argument leaves nothing sensible to continue with.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
