package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/runs"
	"github.com/reusee/turing/vars"
)

var (
	machineFile = cmds.Var[string]("-file")
	tapeInput   = cmds.Var[string]("-input")
	maxSteps    = cmds.Var[int]("-max-steps")
	tapPath     = cmds.Var[string]("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *machineFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <machine file> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(logs.Module),
		new(configs.Module),
		new(machines.Module),
		new(runs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		simConfig configs.SimConfig,
		load machines.Load,
		newRun runs.NewRun,
		loadTap debugs.LoadTap,
	) {
		ctx := context.Background()
		ctx, _ = newSpan(ctx, "")

		def, err := load(*machineFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		run := newRun(def, *tapeInput)

		var tap debugs.Tap
		if path := vars.FirstNonZero(*tapPath, simConfig.Tap); path != "" {
			tap, err = loadTap(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		limit := vars.FirstNonZero(*maxSteps, simConfig.MaxSteps)
		run.Hook = func(ctx context.Context, r *runs.Run) error {
			if tap != nil {
				if err := tap(ctx, r); err != nil {
					return err
				}
			}
			if limit > 0 && r.Steps() >= limit && !r.Done() {
				return fmt.Errorf("step limit reached: %d", limit)
			}
			return nil
		}

		if err := run.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Execution halted: %v\n", logs.WrapSpan(ctx, err))
			os.Exit(1)
		}

		fmt.Println(run.Report())
	})
}
