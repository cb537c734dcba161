package curry

import (
	"github.com/on-the-ground/curry_ive_go/deferred"
	"github.com/on-the-ground/curry_ive_go/shared/helper"
)

func define[R any](fn any, arity int, call func(args []any) R) *deferred.Target {
	t, err := deferred.Define(deferred.NameOf(fn), arity, func(args []any) (any, error) {
		return call(args), nil
	})
	if err != nil {
		panic(err)
	}
	return t
}

func target2[A, B, R any](fn func(A, B) R) *deferred.Target {
	return define(fn, 2, func(args []any) R {
		return fn(helper.ArgAs[A](args[0]), helper.ArgAs[B](args[1]))
	})
}

func target3[A, B, C, R any](fn func(A, B, C) R) *deferred.Target {
	return define(fn, 3, func(args []any) R {
		return fn(helper.ArgAs[A](args[0]), helper.ArgAs[B](args[1]), helper.ArgAs[C](args[2]))
	})
}

func target4[A, B, C, D, R any](fn func(A, B, C, D) R) *deferred.Target {
	return define(fn, 4, func(args []any) R {
		return fn(helper.ArgAs[A](args[0]), helper.ArgAs[B](args[1]), helper.ArgAs[C](args[2]),
			helper.ArgAs[D](args[3]))
	})
}

func target5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) *deferred.Target {
	return define(fn, 5, func(args []any) R {
		return fn(helper.ArgAs[A](args[0]), helper.ArgAs[B](args[1]), helper.ArgAs[C](args[2]),
			helper.ArgAs[D](args[3]), helper.ArgAs[E](args[4]))
	})
}

// Typed arguments always match the target, so an error past this point is a bug.
func pending(v any, err error) *deferred.Call {
	return helper.MustTypedValue[*deferred.Call](v, err)
}

func begin(t *deferred.Target) *deferred.Call {
	return pending(deferred.Curry(t))
}

func step(c *deferred.Call, arg any) *deferred.Call {
	return pending(c.Apply(arg))
}

func finish[R any](c *deferred.Call, args ...any) R {
	return helper.MustTypedValue[R](c.Apply(args...))
}
