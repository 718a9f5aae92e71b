package machines

import "strings"

// ParseRules builds the transition relation from the non-property lines of
// the input. Transitions are written as line pairs:
//
//	currentState, readSymbol
//	newState, writeSymbol, direction
func ParseRules(lines []string) (*Rules, error) {
	var ruleLines []string
	for _, line := range lines {
		if !IsProperty(line) {
			ruleLines = append(ruleLines, strings.TrimSpace(line))
		}
	}

	if len(ruleLines) == 0 {
		return nil, configErrorf("", "no transitions defined")
	}
	if len(ruleLines)%2 != 0 {
		return nil, configErrorf("", "wrong number of lines for defining transitions: %d", len(ruleLines))
	}

	rules := NewRules()
	for i := 0; i < len(ruleLines); i += 2 {
		lineA, lineB := ruleLines[i], ruleLines[i+1]

		fieldsA := splitFields(lineA)
		if len(fieldsA) != 2 {
			return nil, configErrorf(lineA, "expected current state and read symbol")
		}
		fieldsB := splitFields(lineB)
		if len(fieldsB) != 3 {
			return nil, configErrorf(lineB, "expected new state, write symbol and direction")
		}

		readSymbol := []rune(fieldsA[1])
		if len(readSymbol) != 1 {
			return nil, configErrorf(lineA, "read symbol must be one character, but was %q", fieldsA[1])
		}
		writeSymbol := []rune(fieldsB[1])
		if len(writeSymbol) != 1 {
			return nil, configErrorf(lineB, "write symbol must be one character, but was %q", fieldsB[1])
		}

		direction, err := ParseDirection(fieldsB[2])
		if err != nil {
			return nil, &ConfigError{
				Err:  err,
				Line: lineB,
			}
		}

		rules.Add(Rule{
			CurrentState: fieldsA[0],
			ReadSymbol:   readSymbol[0],
			NewState:     fieldsB[0],
			WriteSymbol:  writeSymbol[0],
			Move:         direction,
		})
	}

	return rules, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}
