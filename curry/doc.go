// Package curry provides typed currying and partial application for
// functions of two to five arguments.
//
// Every function here is a thin, type-safe front end over package deferred:
// the returned closures drive a deferred chain underneath, so they follow
// exactly the same stepping rules.
//
//	add := func(a, b, c int) int { return a + b + c }
//	curry.Curry3(add)(1)(77)(10) // 88
//	curry.PartialI3A1(add, 1)(77, 10) // 88
//
// Names follow the arity of the input function and the number of arguments
// bound up front: PartialI5A2 binds two arguments of a five-argument function
// and returns a function of the remaining three.
//
// The closures returned here are plain Go funcs and cannot be inspected with
// deferred.Info. Use package deferred directly when introspection is needed.
package curry
