// SPDX-License-Identifier: MIT

package split

import (
	"fmt"

	"github.com/katalvlaran/coarsen/sparse"
)

// RugeStuben computes the classical sequential coarse/fine splitting from
// the strength matrix s and its transpose t, writing the result into the
// caller-owned splitting (any prior content is overwritten).
//
// lambda(i) = nnz(t row i) is the number of nodes strongly depending on i.
// Steps:
//  1. Validate s, t, and the splitting length (O(n + nnz)).
//  2. Pre-pass: nodes nothing depends on — lambda==0, or lambda==1 with the
//     sole dependent being the node itself — become Fine immediately.
//  3. Walk the lambda bucket permutation from the highest position down.
//     Each extracted node that is still Unassigned becomes Coarse; every
//     Unassigned node j depending on it becomes Fine, and each Unassigned
//     node k influencing such a j gains one lambda bucket (capped at n−1).
//     Unassigned nodes the new Coarse node influences lose one bucket.
//
// Within one bucket the extraction order is whatever order the nodes
// currently occupy — not globally stable, so exact ties may split
// differently across otherwise-equivalent inputs.
//
// On return every node is Coarse or Fine. Extracting a node that is neither
// Fine nor Unassigned panics: the bucket structure only ever hands out each
// node once, so a second promotion is a programmer error.
//
// Complexity: O(n + nnz(s) + nnz(t)) amortized time, O(n) extra memory.
func RugeStuben(s, t *sparse.Matrix, splitting Splitting) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	n := s.N
	if t.N != n || len(splitting) != n {
		return ErrDimensionMismatch
	}

	lambda := make([]int, n)
	for i := 0; i < n; i++ {
		lambda[i] = t.RowPtr[i+1] - t.RowPtr[i]
	}
	buckets := newLambdaBuckets(lambda)

	for i := range splitting {
		splitting[i] = Unassigned
	}

	// Nodes with no dependents (or only themselves) cannot usefully coarsen.
	for i := 0; i < n; i++ {
		if lambda[i] == 0 || (lambda[i] == 1 && t.ColInd[t.RowPtr[i]] == i) {
			splitting[i] = Fine
		}
	}

	// Coarsen in descending lambda order.
	for topIndex := n - 1; topIndex >= 0; topIndex-- {
		i := buckets.node(topIndex)
		buckets.remove(i)

		if splitting[i] == Fine {
			continue
		}
		if splitting[i] != Unassigned {
			panic(fmt.Sprintf("split: ruge-stuben extracted node %d with label %s", i, splitting[i]))
		}
		splitting[i] = Coarse

		// Every Unassigned dependent of i becomes Fine; nodes that
		// strongly influence a fresh Fine node gain importance.
		for jj := t.RowPtr[i]; jj < t.RowPtr[i+1]; jj++ {
			j := t.ColInd[jj]
			if splitting[j] != Unassigned {
				continue
			}
			splitting[j] = Fine

			for kk := s.RowPtr[j]; kk < s.RowPtr[j+1]; kk++ {
				if k := s.ColInd[kk]; splitting[k] == Unassigned {
					buckets.increment(k)
				}
			}
		}

		// Nodes i influences are now partly covered; they lose importance.
		for jj := s.RowPtr[i]; jj < s.RowPtr[i+1]; jj++ {
			if j := s.ColInd[jj]; splitting[j] == Unassigned {
				buckets.decrement(j)
			}
		}
	}

	return nil
}
