package machines

import "strings"

const DefaultName = "Turing Machine"

type Config struct {
	Name         string
	InitialState string
	AcceptStates []string
}

// ParseConfig builds a Config from the property lines of the input.
// Non-property lines are ignored here; ParseRules consumes them.
func ParseConfig(lines []string) (Config, error) {
	var propertyLines []string
	for _, line := range lines {
		if IsProperty(line) {
			propertyLines = append(propertyLines, line)
		}
	}

	// "name" is optional, "init" and "accept" are not.
	if len(propertyLines) < 2 || len(propertyLines) > 3 {
		return Config{}, configErrorf("", "wrong number of machine properties: %d", len(propertyLines))
	}

	config := Config{
		Name: DefaultName,
	}
	initSeen := false
	for _, line := range propertyLines {
		key, value, _ := strings.Cut(line, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {

		case "name":
			config.Name = value

		case "init":
			config.InitialState = value
			initSeen = true

		case "accept":
			var states []string
			for _, state := range strings.Split(value, ",") {
				states = append(states, strings.TrimSpace(state))
			}
			config.AcceptStates = states

		default:
			return Config{}, configErrorf(line, "unknown property: %s", key)
		}
	}

	if !initSeen {
		return Config{}, configErrorf("", "initial state must be defined")
	}
	if len(config.AcceptStates) == 0 {
		return Config{}, configErrorf("", "at least one accept state must be defined")
	}

	return config, nil
}
