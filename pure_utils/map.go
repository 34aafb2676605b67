package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// MapErr returns a new slice with the same length as src, but with values
// transformed by f. Stops at the first error.
func MapErr[T, U any](src []T, f func(T) (U, error)) ([]U, error) {
	us := make([]U, len(src))
	for i := range src {
		u, err := f(src[i])
		if err != nil {
			return nil, err
		}
		us[i] = u
	}
	return us, nil
}
