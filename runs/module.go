package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
)

type Module struct {
	dscope.Module
}

type NewRun func(def *machines.Definition, input string) *Run

func (Module) NewRun(
	logger logs.Logger,
) NewRun {
	return func(def *machines.Definition, input string) *Run {
		return New(def, input, logger)
	}
}
