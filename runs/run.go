package runs

import (
	"context"
	"slices"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

// StateReject is the reserved terminal state reached when no transition
// rule matches. A user-defined accept state with the same name simply
// makes rejection accepting; not treated as an error.
const StateReject = "REJECT"

// Run is the mutable state of one machine execution. Construct with New,
// drive with Step or Run, inspect with the accessors, then discard.
type Run struct {
	// Hook, when set, is invoked after every step of Run. Returning an
	// error aborts the run; this is where callers bound step counts.
	Hook func(ctx context.Context, r *Run) error

	name         string
	rules        *machines.Rules
	acceptStates []string

	tape  *tapes.Tape
	head  int
	state string
	steps int

	logger logs.Logger
}

func New(def *machines.Definition, input string, logger logs.Logger) *Run {
	// the engine's accept list carries the reject label, so that a
	// rejected run terminates like any accepted one
	acceptStates := make([]string, 0, len(def.Config.AcceptStates)+1)
	acceptStates = append(acceptStates, def.Config.AcceptStates...)
	acceptStates = append(acceptStates, StateReject)

	return &Run{
		name:         def.Config.Name,
		rules:        def.Rules,
		acceptStates: acceptStates,
		tape:         tapes.New(input),
		state:        def.Config.InitialState,
		logger:       logger,
	}
}

func (r *Run) State() string { return r.state }

// Head is the current head position. It may sit outside the tape between
// steps: one past the last index, or below 0. The next step grows the tape
// at the exact -1 and length boundaries; positions below -1 read as blank
// and write relative to the right end.
func (r *Run) Head() int { return r.head }

func (r *Run) Tape() *tapes.Tape { return r.tape }

func (r *Run) Steps() int { return r.steps }

func (r *Run) AcceptStates() []string {
	return slices.Clone(r.acceptStates)
}

// Done reports whether the current state is terminal.
func (r *Run) Done() bool {
	return slices.Contains(r.acceptStates, r.state)
}

// Step advances the machine by one transition. When no rule matches the
// current (state, symbol) pair, the state becomes StateReject and tape
// and head are left untouched.
func (r *Run) Step() {
	symbol := r.tape.Read(r.head)

	rule, ok := r.rules.Match(r.state, symbol)
	if !ok {
		r.state = StateReject
		r.steps++
		return
	}

	switch {
	case r.head == -1:
		// grow leftward, re-inserting the symbol just read; the rule's
		// write symbol is not applied at the boundary
		r.tape.Prepend(symbol)
	case r.head == r.tape.Len():
		r.tape.Append(symbol)
	default:
		// leftward growth does not shift the head, so it can sit below
		// -1 here; such writes resolve as negative indexes from the
		// right end, and are dropped when even that is out of range
		i := r.head
		if i < 0 {
			i += r.tape.Len()
		}
		if i >= 0 && i < r.tape.Len() {
			r.tape.Write(i, rule.WriteSymbol)
		}
	}

	switch rule.Move {
	case machines.MoveLeft:
		r.head--
	case machines.MoveRight:
		r.head++
	}

	r.state = rule.NewState
	r.steps++
}

// Run steps the machine until it reaches a terminal state. At least one
// step is always executed before the first termination check. A machine
// that never terminates loops until ctx is cancelled or the Hook aborts;
// with a plain background context it loops forever, matching the format's
// semantics.
func (r *Run) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "run started",
		"machine", r.name,
		"init", r.state,
		"tape", r.tape.String(),
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.Step()
		r.logger.DebugContext(ctx, "step",
			"state", r.state,
			"head", r.head,
			"tape", r.tape.String(),
		)

		if r.Hook != nil {
			if err := r.Hook(ctx, r); err != nil {
				return err
			}
		}

		if r.Done() {
			r.logger.InfoContext(ctx, "run completed",
				"machine", r.name,
				"state", r.state,
				"steps", r.steps,
			)
			return nil
		}
	}
}
