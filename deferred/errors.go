package deferred

import (
	"fmt"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

var (
	ErrArityMismatch = fmt.Errorf("arity mismatch")
	ErrNotSupported  = fmt.Errorf("not a deferred call")
	ErrNotFunc       = fmt.Errorf("target is not a function")
	ErrVariadic      = fmt.Errorf("variadic targets are not supported")
	ErrArgumentType  = fmt.Errorf("argument type mismatch")
	ErrInvalidConfig = fmt.Errorf("invalid config")
)

// ArityMismatchError reports a step that received the wrong number of arguments.
type ArityMismatchError struct {
	Expected int
	Received int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %s, received %d",
		ErrArityMismatch, english.Plural(e.Expected, "argument", ""), e.Received)
}

func (e *ArityMismatchError) Unwrap() error {
	return ErrArityMismatch
}

// ArgumentTypeError reports an argument that cannot be passed to its parameter.
// Position is 1-based. Got is nil when the argument was nil.
type ArgumentTypeError struct {
	Position int
	Want     reflect.Type
	Got      reflect.Type
}

func (e *ArgumentTypeError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("%v: %s argument: cannot use %s as %s",
		ErrArgumentType, humanize.Ordinal(e.Position), got, e.Want)
}

func (e *ArgumentTypeError) Unwrap() error {
	return ErrArgumentType
}
