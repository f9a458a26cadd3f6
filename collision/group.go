package collision

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group is a set of placed parts checked together, as used by the assembly
// model's transactional mutation step (query the collision engine over all
// part pairs that could be affected).
type Group struct {
	parts []Placed
}

// NewGroup builds a Group from the given placed parts.
func NewGroup(parts ...Placed) Group {
	return Group{parts: parts}
}

// AnyColliding returns true as soon as any unordered pair within the group
// collides. Pair enumeration is fanned out across a bounded worker pool;
// the predicate is referentially transparent and read-only, so results are
// order-independent regardless of scheduling.
func (g Group) AnyColliding() bool {
	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < len(g.parts); i++ {
		for j := i + 1; j < len(g.parts); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	if len(pairs) == 0 {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workerLimit())

	found := make(chan struct{}, 1)
	for _, p := range pairs {
		p := p
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if MeshCollides(g.parts[p.i], g.parts[p.j]) {
				select {
				case found <- struct{}{}:
				default:
				}
				cancel()
			}
			return nil
		})
	}
	_ = eg.Wait()

	select {
	case <-found:
		return true
	default:
		return false
	}
}

// CollidesWith returns true if the group collides with an external part
// placed at the given world transform.
func (g Group) CollidesWith(other Placed) bool {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workerLimit())

	found := make(chan struct{}, 1)
	for _, part := range g.parts {
		part := part
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if MeshCollides(part, other) {
				select {
				case found <- struct{}{}:
				default:
				}
				cancel()
			}
			return nil
		})
	}
	_ = eg.Wait()

	select {
	case <-found:
		return true
	default:
		return false
	}
}

// workerLimit bounds fan-out for group queries; kept modest since a single
// assembly mutation rarely involves more than a handful of affected parts.
func workerLimit() int {
	return 8
}
