package machines

import "iter"

// Rule is one entry of the transition relation. Identity is value-based.
type Rule struct {
	CurrentState string
	ReadSymbol   rune
	NewState     string
	WriteSymbol  rune
	Move         Direction
}

type ruleKey struct {
	state  string
	symbol rune
}

// Rules is the transition relation. It behaves as a set (value-identical
// rules collapse), with a deterministic resolution of ambiguous entries:
// when multiple rules share a (state, symbol) pair, the first one added
// wins. The text format does not promise determinism here, so the choice
// is pinned down at insertion time rather than left to map iteration.
type Rules struct {
	list  []Rule
	seen  map[Rule]struct{}
	index map[ruleKey]Rule
}

func NewRules() *Rules {
	return &Rules{
		seen:  make(map[Rule]struct{}),
		index: make(map[ruleKey]Rule),
	}
}

func (r *Rules) Add(rule Rule) {
	if _, ok := r.seen[rule]; ok {
		return
	}
	r.seen[rule] = struct{}{}
	r.list = append(r.list, rule)

	key := ruleKey{
		state:  rule.CurrentState,
		symbol: rule.ReadSymbol,
	}
	if _, ok := r.index[key]; !ok {
		r.index[key] = rule
	}
}

// Match returns the rule selected for (state, symbol), if any.
func (r *Rules) Match(state string, symbol rune) (Rule, bool) {
	rule, ok := r.index[ruleKey{
		state:  state,
		symbol: symbol,
	}]
	return rule, ok
}

func (r *Rules) Len() int {
	return len(r.list)
}

// All yields the rules in insertion order.
func (r *Rules) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, rule := range r.list {
			if !yield(rule) {
				break
			}
		}
	}
}
