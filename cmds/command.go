package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	fn          reflect.Value
	subs        map[string]*Command
	description string
	aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.aliases = append(c.aliases, names...)
	return c
}

// Func wraps a function as a command. Arguments of the function become
// positional command arguments; pointer arguments are optional. The
// function may return nothing, or a single error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		fn: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		subs: subs,
	}
}
