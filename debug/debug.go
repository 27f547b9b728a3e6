//go:build !debug

// Package debug exposes the build-time debug flag.
//
// Building with -tags=debug keeps logging enabled under go test and turns on
// extra sanity checks.
package debug

const Debug = false
