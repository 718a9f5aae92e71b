package machines

// Definition is a complete parsed machine: its configuration and its
// transition relation. Read-only once built.
type Definition struct {
	Config Config
	Rules  *Rules
}

// Parse turns the pre-stripped lines of a machine file into a Definition.
// Property lines and transition lines may be interleaved freely; they are
// collected in two independent passes.
func Parse(lines []string) (*Definition, error) {
	config, err := ParseConfig(lines)
	if err != nil {
		return nil, err
	}
	rules, err := ParseRules(lines)
	if err != nil {
		return nil, err
	}
	return &Definition{
		Config: config,
		Rules:  rules,
	}, nil
}
