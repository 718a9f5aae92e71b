package debugs

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/runs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap observes a run after each step.
type Tap func(ctx context.Context, run *runs.Run) error

type LoadTap func(path string) (Tap, error)

// LoadTap compiles a starlark tap script. The script must define
//
//	def on_step(state, head, tape, step): ...
//
// which is called after every engine step with the current state name,
// the head position, the tape cells as a list of strings, and the step
// count. A "log" builtin is predeclared for emitting trace lines; any
// error raised by the script (including fail()) aborts the run.
func (Module) LoadTap(
	logger logs.Logger,
) LoadTap {
	return func(path string) (Tap, error) {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		predeclared := starlark.StringDict{
			"log": starlarkutil.MakeFunc("log", func(msg string) {
				logger.Info("tap: " + msg)
			}),
		}

		opts := &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}
		thread := &starlark.Thread{
			Name: path,
		}
		globals, err := starlark.ExecFileOptions(opts, thread, path, src, predeclared)
		if err != nil {
			return nil, err
		}

		onStep, ok := globals["on_step"]
		if !ok {
			return nil, fmt.Errorf("tap script %s does not define on_step", path)
		}
		fn, ok := onStep.(starlark.Callable)
		if !ok {
			return nil, fmt.Errorf("on_step in %s is not callable", path)
		}

		return func(ctx context.Context, run *runs.Run) error {
			args := starlark.Tuple{
				toStarlarkValue(run.State()),
				toStarlarkValue(run.Head()),
				toStarlarkValue(tapeCells(run)),
				toStarlarkValue(run.Steps()),
			}
			thread := &starlark.Thread{
				Name: "on_step",
			}
			if _, err := starlark.Call(thread, fn, args, nil); err != nil {
				return err
			}
			return nil
		}, nil
	}
}

func tapeCells(run *runs.Run) []string {
	symbols := run.Tape().Symbols()
	cells := make([]string, len(symbols))
	for i, symbol := range symbols {
		cells[i] = string(symbol)
	}
	return cells
}
