// Package pathplan implements the resolver engine: pluggable planners that
// explore a discretised configuration space against an assembly's
// collision predicate and return an ordered, collision-free path.
package pathplan

// Status is a path's terminal outcome; never an error, per the domain's
// error-vs-result split.
type Status int

const (
	// Reached means the path's last state equals the requested target.
	Reached Status = iota
	// InvalidStart means the starting state itself was not collision-free.
	InvalidStart
	// UnreachableEnd means exploration was exhausted before reaching the
	// target; the path holds every state collision-free up to that point.
	UnreachableEnd
)

// Path is an ordered, finite sequence of states of type S plus its
// terminal status.
type Path[S any] struct {
	Nodes  []S
	Status Status
}

// Map transforms every node of the path into type T, preserving status.
func Map[S, T any](p Path[S], f func(S) T) Path[T] {
	nodes := make([]T, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = f(n)
	}
	return Path[T]{Nodes: nodes, Status: p.Status}
}
