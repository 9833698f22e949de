//go:build !debug

// Package debug exposes the build-mode switch for extraction checks.
//
// Checks are enabled by building with the `debug` build tag and are omitted
// otherwise. The switch is a compile-time constant: it is resolved once per
// artifact, identically for every call site, and cannot change at runtime.
//
// Guard any check that is more than a constant-foldable branch with
// `if debug.Enabled { ... }` so the compiler can remove it from release
// builds entirely.
package debug

// Enabled reports that extraction checks are compiled into this build.
const Enabled = false
