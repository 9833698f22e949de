package pointers

// New returns a pointer to a copy of v.
func New[T any](v T) *T {
	return &v
}

// Value dereferences p, returning T's zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}
