//go:build debug

package debug

// Enabled reports that extraction checks are compiled into this build.
//
// It is a constant so that `if debug.Enabled { ... }` branches are resolved
// at compile time and carry no runtime cost in either mode.
const Enabled = true
