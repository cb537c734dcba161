package curry

// Curry2 turns a two-argument function into a chain of one-argument functions.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	t := target2(fn)
	return func(a A) func(B) R {
		c1 := step(begin(t), a)
		return func(b B) R {
			return finish[R](c1, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of one-argument functions.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	t := target3(fn)
	return func(a A) func(B) func(C) R {
		c1 := step(begin(t), a)
		return func(b B) func(C) R {
			c2 := step(c1, b)
			return func(c C) R {
				return finish[R](c2, c)
			}
		}
	}
}

// Curry4 turns a four-argument function into a chain of one-argument functions.
func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	t := target4(fn)
	return func(a A) func(B) func(C) func(D) R {
		c1 := step(begin(t), a)
		return func(b B) func(C) func(D) R {
			c2 := step(c1, b)
			return func(c C) func(D) R {
				c3 := step(c2, c)
				return func(d D) R {
					return finish[R](c3, d)
				}
			}
		}
	}
}

// Curry5 turns a five-argument function into a chain of one-argument functions.
func Curry5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	t := target5(fn)
	return func(a A) func(B) func(C) func(D) func(E) R {
		c1 := step(begin(t), a)
		return func(b B) func(C) func(D) func(E) R {
			c2 := step(c1, b)
			return func(c C) func(D) func(E) R {
				c3 := step(c2, c)
				return func(d D) func(E) R {
					c4 := step(c3, d)
					return func(e E) R {
						return finish[R](c4, e)
					}
				}
			}
		}
	}
}
