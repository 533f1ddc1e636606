package core

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes a human-readable rendering of the graph to w: one line
// per vertex of the form
//
//	Sommet <id>: <id>-><target>, <id>-><target>, ...
//
// followed by a terminating blank line. The format is kept verbatim from
// the legacy implementation this container replaces; it is read-only and
// never mutates the graph. Implements io.WriterTo.
func (g *Graph[T]) WriteTo(w io.Writer) (int64, error) {
	var written int64

	var n int
	var err error
	for v, targets := range g.adj {
		n, err = fmt.Fprintf(w, "Sommet %d: ", v)
		written += int64(n)
		if err != nil {
			return written, err
		}
		for _, t := range targets {
			n, err = fmt.Fprintf(w, "%d->%d, ", v, t)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		n, err = fmt.Fprintln(w)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	n, err = fmt.Fprintln(w)
	written += int64(n)

	return written, err
}

// String renders the graph in the WriteTo format.
func (g *Graph[T]) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)

	return sb.String()
}
