package deferred

import (
	"slices"

	"github.com/google/uuid"
	"github.com/on-the-ground/curry_ive_go/shared/helper"
)

// Call is one step of a currying or partial application chain. It is
// immutable: Apply never changes the receiver, so a Call can be applied any
// number of times, each time starting an independent continuation.
type Call struct {
	engine    *Engine
	target    *Target
	collected []any
	mode      Mode
	chain     uuid.UUID
}

// Expects is the exact argument count Apply accepts: 1 when currying, every
// remaining argument under partial application.
func (c *Call) Expects() int {
	if c.mode == ModeCurry {
		return 1
	}
	return c.Remaining()
}

func (c *Call) Remaining() int   { return c.target.arity - len(c.collected) }
func (c *Call) Arity() int       { return c.target.arity }
func (c *Call) Mode() Mode       { return c.mode }
func (c *Call) Target() *Target  { return c.target }
func (c *Call) Chain() uuid.UUID { return c.chain }

// Collected returns a copy of the arguments supplied so far.
func (c *Call) Collected() []any {
	return slices.Clone(c.collected)
}

// Apply supplies the next arguments. It returns the target's result when they
// complete the argument list, and the next *Call otherwise.
func (c *Call) Apply(args ...any) (any, error) {
	if expects := c.Expects(); len(args) != expects {
		return nil, &ArityMismatchError{Expected: expects, Received: len(args)}
	}
	collected := make([]any, 0, len(c.collected)+len(args))
	collected = append(collected, c.collected...)
	collected = append(collected, args...)
	return c.engine.next(c.target, collected, c.mode, c.chain)
}

// Feed applies args step by step: one per step when currying, all remaining
// at once under partial application. When currying, fewer args than remaining
// stop at the Call reached. Under partial application any count other than
// the remaining one, and in either mode more args than remaining, fails with
// an *ArityMismatchError before anything is invoked.
func (c *Call) Feed(args ...any) (any, error) {
	if remaining := c.Remaining(); len(args) > remaining {
		return nil, &ArityMismatchError{Expected: remaining, Received: len(args)}
	}
	var v any = c
	for len(args) > 0 {
		step := v.(*Call)
		n := step.Expects()
		if len(args) < n {
			return nil, &ArityMismatchError{Expected: n, Received: len(args)}
		}
		var err error
		if v, err = step.Apply(args[:n]...); err != nil {
			return nil, err
		}
		args = args[n:]
	}
	return v, nil
}

// Feed is Call.Feed for a value returned by Curry, Partial or Apply. A value
// that is not a *Call is a finished result and accepts no further arguments.
func Feed(v any, args ...any) (any, error) {
	if c, ok := v.(*Call); ok && c != nil {
		return c.Feed(args...)
	}
	if len(args) > 0 {
		return nil, &ArityMismatchError{Expected: 0, Received: len(args)}
	}
	return v, nil
}

// ResultAs asserts a chain result to T.
func ResultAs[T any](v any, err error) (T, error) {
	return helper.TypedValueOf[T](v, err)
}
