package route

// Curry2 converts a binary function into its curried form.
func Curry2[A, B, V any](f func(A, B) V) func(A) func(B) V {
	return func(a A) func(B) V {
		return func(b B) V {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form.
func Curry3[A, B, C, V any](f func(A, B, C) V) func(A) func(B) func(C) V {
	return func(a A) func(B) func(C) V {
		return func(b B) func(C) V {
			return func(c C) V {
				return f(a, b, c)
			}
		}
	}
}
