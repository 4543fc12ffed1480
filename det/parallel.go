// SPDX-License-Identifier: MIT

package det

import "golang.org/x/sync/errgroup"

// expandParallel evaluates the n sibling minors of row 0 on at most limit
// goroutines. Sibling minors share nothing: each worker builds its own copy
// via minorOf and only reads m.
//
// Determinism:
//   - terms[j] is written by exactly one worker; the final fold runs in
//     ascending j after Wait, the same order expand uses.
//
// Workers cannot fail; errgroup is used only for its SetLimit bound.
func expandParallel[T Number](m [][]T, limit int) T {
	n := len(m)
	terms := make([]T, n)

	var g errgroup.Group
	g.SetLimit(limit)
	for j := 0; j < n; j++ {
		g.Go(func() error {
			terms[j] = m[0][j] * expand(minorOf(m, 0, j))
			return nil
		})
	}
	_ = g.Wait() // always nil

	var total T
	for j, term := range terms {
		if j%2 == 0 {
			total += term
		} else {
			total -= term
		}
	}

	return total
}
