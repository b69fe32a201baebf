package instant

// Overflow-checked int64 arithmetic. Go integers wrap silently; these
// helpers report the wrap instead so that a wrapped value can never escape
// as a valid Instant.

// mulChecked returns a*b and whether it fits in an int64.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return 0, false
	}

	return c, true
}

// addChecked returns a+b and whether it fits in an int64.
func addChecked(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}

const minInt64 = -1 << 63
