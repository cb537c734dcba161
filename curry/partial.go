package curry

import "github.com/on-the-ground/curry_ive_go/deferred"

func bind(t *deferred.Target, args ...any) *deferred.Call {
	return pending(deferred.Partial(t, args...))
}

// PartialI2A1 binds the first argument of two arguments and returns a function of the rest.
func PartialI2A1[A, B, R any](fn func(A, B) R, a A) func(B) R {
	p := bind(target2(fn), a)
	return func(b B) R {
		return finish[R](p, b)
	}
}

// PartialI3A1 binds the first argument of three arguments and returns a function of the rest.
func PartialI3A1[A, B, C, R any](fn func(A, B, C) R, a A) func(B, C) R {
	p := bind(target3(fn), a)
	return func(b B, c C) R {
		return finish[R](p, b, c)
	}
}

// PartialI3A2 binds the first two of three arguments and returns a function of the rest.
func PartialI3A2[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	p := bind(target3(fn), a, b)
	return func(c C) R {
		return finish[R](p, c)
	}
}

// PartialI4A1 binds the first argument of four arguments and returns a function of the rest.
func PartialI4A1[A, B, C, D, R any](fn func(A, B, C, D) R, a A) func(B, C, D) R {
	p := bind(target4(fn), a)
	return func(b B, c C, d D) R {
		return finish[R](p, b, c, d)
	}
}

// PartialI4A2 binds the first two of four arguments and returns a function of the rest.
func PartialI4A2[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B) func(C, D) R {
	p := bind(target4(fn), a, b)
	return func(c C, d D) R {
		return finish[R](p, c, d)
	}
}

// PartialI4A3 binds the first three of four arguments and returns a function of the rest.
func PartialI4A3[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B, c C) func(D) R {
	p := bind(target4(fn), a, b, c)
	return func(d D) R {
		return finish[R](p, d)
	}
}

// PartialI5A1 binds the first argument of five arguments and returns a function of the rest.
func PartialI5A1[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A) func(B, C, D, E) R {
	p := bind(target5(fn), a)
	return func(b B, c C, d D, e E) R {
		return finish[R](p, b, c, d, e)
	}
}

// PartialI5A2 binds the first two of five arguments and returns a function of the rest.
func PartialI5A2[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B) func(C, D, E) R {
	p := bind(target5(fn), a, b)
	return func(c C, d D, e E) R {
		return finish[R](p, c, d, e)
	}
}

// PartialI5A3 binds the first three of five arguments and returns a function of the rest.
func PartialI5A3[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B, c C) func(D, E) R {
	p := bind(target5(fn), a, b, c)
	return func(d D, e E) R {
		return finish[R](p, d, e)
	}
}

// PartialI5A4 binds the first four of five arguments and returns a function of the rest.
func PartialI5A4[A, B, C, D, E, R any](fn func(A, B, C, D, E) R, a A, b B, c C, d D) func(E) R {
	p := bind(target5(fn), a, b, c, d)
	return func(e E) R {
		return finish[R](p, e)
	}
}
