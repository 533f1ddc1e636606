//go:build !digraphcheck

package core

// invariants compiles to a no-op in release builds.
// Build with -tags digraphcheck to enable structural verification.
func (g *Graph[T]) invariants() {}
