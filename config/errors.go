package config

import "fmt"

// unimplementedError is returned by preset variants mirrored from the
// upstream configuration surface but never fleshed out there either
// (the parametric "ExampleXWithConfig" placeholders).
type unimplementedError struct {
	preset string
}

func (e *unimplementedError) Error() string {
	return fmt.Sprintf("config: preset %s has no concrete implementation", e.preset)
}
