//go:build ml_noassert

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = false
