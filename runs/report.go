package runs

import "fmt"

// Report is the observable result of a run.
type Report struct {
	State string
	Tape  []string
	// Head is 1-indexed, as printed by the simulator.
	Head int
}

func (r *Run) Report() Report {
	symbols := r.tape.Symbols()
	cells := make([]string, len(symbols))
	for i, symbol := range symbols {
		cells[i] = string(symbol)
	}
	return Report{
		State: r.state,
		Tape:  cells,
		Head:  r.head + 1,
	}
}

func (r Report) String() string {
	return fmt.Sprintf(
		"Ended in state %s\nTape was: %v\nTape head was at position %d",
		r.State, r.Tape, r.Head,
	)
}
