package allocation

import (
	"iter"

	"github.com/KirkDiggler/roomease/internal/entities"
)

// Combinations lazily yields every k-sized subset of pool.
//
// Subsets come in lexicographic order of pool positions: all subsets that
// contain pool[0] first, then those that do not, and so on recursively.
// The optimizer's tie-break depends on this order. k == 0 yields a single
// empty subset; k < 0 or k > len(pool) yields nothing. Each yielded slice
// is freshly allocated and may be kept by the caller.
func Combinations(pool []entities.Room, k int) iter.Seq[[]entities.Room] {
	return func(yield func([]entities.Room) bool) {
		n := len(pool)
		if k < 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			if !yield(pick(pool, idx)) {
				return
			}

			// rightmost position that can still move forward
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}

			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// CountCombinations returns C(n, k), the number of subsets Combinations yields
func CountCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	count := 1
	for i := 1; i <= k; i++ {
		count = count * (n - k + i) / i
	}
	return count
}

func pick(pool []entities.Room, idx []int) []entities.Room {
	combo := make([]entities.Room, len(idx))
	for i, p := range idx {
		combo[i] = pool[p]
	}
	return combo
}
