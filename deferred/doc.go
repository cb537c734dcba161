// Package deferred provides currying and partial application over Go
// functions of fixed arity.
//
// A target function is handed to Curry or Partial together with zero or more
// of its arguments. While arguments are still missing, the result is a *Call:
// an immutable value that remembers the target, the arguments collected so
// far and the mode of the chain. Once the last argument arrives, the target is
// invoked and its result is returned directly.
//
// # Two modes
//
// Currying always proceeds one argument at a time:
//
//	c, _ := deferred.Curry(add3)
//	c, _ = c.(*deferred.Call).Apply(1)
//	c, _ = c.(*deferred.Call).Apply(77)
//	sum, _ := c.(*deferred.Call).Apply(10) // 88
//
// Partial application takes any number of arguments up front, then exactly
// the remaining ones in a single call:
//
//	p, _ := deferred.Partial(add5, 1, 2)
//	sum, _ := p.(*deferred.Call).Apply(3, 4, 5) // 15
//
// Feed walks a chain for you:
//
//	sum, _ := deferred.Feed(c, 1, 77, 10)
//
// # Introspection
//
// Info reports what a *Call carries: the target's identity, the mode, the
// arity and how many arguments are collected and still needed. Every field
// is read from the Call itself; argument values are never inspected.
//
// # Errors
//
// Supplying the wrong number of arguments yields an *ArityMismatchError.
// Errors returned by the target, and its panics, propagate unmodified.
package deferred
