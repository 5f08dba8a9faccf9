package allocation

import (
	"context"
	"math"
	"slices"

	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
)

const defaultCheckInterval = 1024

// Allocator picks k rooms out of a pool
type Allocator interface {
	// Optimal returns the k-room subset of pool with the lowest travel cost
	Optimal(ctx context.Context, pool []entities.Room, k int) (*Allocation, error)
}

// Allocation is the outcome of a search
type Allocation struct {
	Rooms []entities.Room
	Cost  int
	// Evaluated counts the subsets whose cost was computed
	Evaluated int
}

// RoomIDs returns the ids of the allocated rooms
func (a *Allocation) RoomIDs() []string {
	return entities.RoomIDs(a.Rooms)
}

// OptimizerConfig holds configuration for the optimizer
type OptimizerConfig struct {
	// CheckInterval is how many search steps run between context checks
	CheckInterval int
}

// Optimizer finds the minimum travel cost subset of a pool.
//
// Among subsets with equal cost the first one in Combinations order wins.
type Optimizer struct {
	checkInterval int
}

// NewOptimizer creates a new optimizer; cfg may be nil
func NewOptimizer(cfg *OptimizerConfig) *Optimizer {
	interval := defaultCheckInterval
	if cfg != nil && cfg.CheckInterval > 0 {
		interval = cfg.CheckInterval
	}

	return &Optimizer{
		checkInterval: interval,
	}
}

// Optimal returns the k-room subset of pool with the lowest travel cost.
//
// Pools ordered by (floor, index), such as Grid.AvailableRooms, are searched
// with branch and bound; other pools are enumerated exhaustively. Both give
// the same answer.
func (o *Optimizer) Optimal(ctx context.Context, pool []entities.Room, k int) (*Allocation, error) {
	if k < 1 {
		return nil, roomerr.Newf(roomerr.CodeInvalidRequestCount, "combination size must be at least 1, got %d", k).
			WithMeta("count", k)
	}
	if len(pool) < k {
		return nil, roomerr.InsufficientPool(k, len(pool))
	}

	if slices.IsSortedFunc(pool, entities.Room.Compare) {
		return o.branchAndBound(ctx, pool, k)
	}
	return o.exhaustive(ctx, pool, k)
}

func (o *Optimizer) exhaustive(ctx context.Context, pool []entities.Room, k int) (*Allocation, error) {
	result := &Allocation{Cost: math.MaxInt}

	for combo := range Combinations(pool, k) {
		result.Evaluated++
		if result.Evaluated%o.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, interrupted(err, result.Evaluated)
			}
		}

		if cost := TravelCost(combo); cost < result.Cost {
			result.Cost = cost
			result.Rooms = combo
		}
	}

	return result, nil
}

// branchAndBound walks the subsets of a sorted pool in Combinations order,
// skipping every branch whose floor span alone already reaches the best cost.
//
// With the pool sorted, the first pick is the lowest room of the subset and
// the last reachable pick sits on a floor no lower than
// pool[idx[depth]+remaining], so 2 * that floor gap bounds every completion.
// The bound only grows as idx[depth] moves right, so a failed bound ends the
// whole level. Skipped subsets cannot be strictly cheaper than the current
// best, so the tie-break matches the exhaustive walk.
func (o *Optimizer) branchAndBound(ctx context.Context, pool []entities.Room, k int) (*Allocation, error) {
	n := len(pool)
	idx := make([]int, k)
	var bestIdx []int
	best := math.MaxInt
	evaluated := 0
	steps := 0

	depth := 0
	for depth >= 0 {
		steps++
		if steps%o.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, interrupted(err, steps)
			}
		}

		if idx[depth] > n-k+depth {
			depth--
			if depth >= 0 {
				idx[depth]++
			}
			continue
		}

		if depth > 0 && floorSpanBound(pool, idx[0], idx[depth]+k-1-depth) >= best {
			depth--
			idx[depth]++
			continue
		}

		if depth < k-1 {
			depth++
			idx[depth] = idx[depth-1] + 1
			continue
		}

		evaluated++
		if cost := TravelCost(pick(pool, idx)); cost < best {
			best = cost
			bestIdx = slices.Clone(idx)
			if best == 0 {
				break
			}
		}
		idx[depth]++
	}

	return &Allocation{
		Rooms:     pick(pool, bestIdx),
		Cost:      best,
		Evaluated: evaluated,
	}, nil
}

func floorSpanBound(pool []entities.Room, first, last int) int {
	return (pool[last].Floor - pool[first].Floor) * FloorWeight
}

func interrupted(err error, steps int) error {
	interruptErr := roomerr.Internalf("allocation search interrupted after %d steps", steps)
	interruptErr.Cause = err
	return interruptErr
}
