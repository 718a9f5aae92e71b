package machines

import "fmt"

// ConfigError is the only error kind raised while parsing a machine
// definition. Execution never fails; unmatched transitions reject instead.
type ConfigError struct {
	Err  error
	Line string
}

func (e *ConfigError) Error() string {
	if e.Line == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s, in line: %q", e.Err.Error(), e.Line)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(line string, format string, args ...any) error {
	return &ConfigError{
		Err:  fmt.Errorf(format, args...),
		Line: line,
	}
}
