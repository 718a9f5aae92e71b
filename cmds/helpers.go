package cmds

// Var defines a command that assigns its argument to the returned value.
// A trailing-dot form resets to the zero value.
func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a boolean command; "!"-prefixed form sets it false.
func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines a command that appends each argument to the returned slice.
func Collect[T any](name string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
