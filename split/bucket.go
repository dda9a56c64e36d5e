// SPDX-License-Identifier: MIT

package split

// lambdaBuckets keeps the nodes ordered by their integer lambda measure
// (bounded priorities 0..n−1). For each lambda value it maintains a
// contiguous interval of node ids inside a permutation array, plus the two
// inverse index maps, giving O(1) amortized moves to the adjacent bucket.
// A general-purpose priority queue would cost O(log n) per re-prioritization
// and is explicitly the wrong structure here.
//
// Layout:
//
//	indexToNode — permutation of 0..n−1, grouped by ascending lambda
//	nodeToIndex — inverse of indexToNode
//	intervalPtr[v]   — first position of the lambda==v interval
//	intervalCount[v] — live length of the lambda==v interval
type lambdaBuckets struct {
	lambda        []int
	intervalPtr   []int
	intervalCount []int
	indexToNode   []int
	nodeToIndex   []int
}

// newLambdaBuckets builds the interval structure over lambda by counting
// sort. lambda is adopted and mutated by increment/decrement.
//
// Complexity: O(n) time and memory.
func newLambdaBuckets(lambda []int) *lambdaBuckets {
	n := len(lambda)
	b := &lambdaBuckets{
		lambda:        lambda,
		intervalPtr:   make([]int, n+1),
		intervalCount: make([]int, n+1),
		indexToNode:   make([]int, n),
		nodeToIndex:   make([]int, n),
	}

	for _, v := range lambda {
		b.intervalCount[v]++
	}
	cumsum := 0
	for i := 0; i < n; i++ {
		b.intervalPtr[i] = cumsum
		cumsum += b.intervalCount[i]
		b.intervalCount[i] = 0
	}
	for i := 0; i < n; i++ {
		v := lambda[i]
		idx := b.intervalPtr[v] + b.intervalCount[v]
		b.indexToNode[idx] = i
		b.nodeToIndex[i] = idx
		b.intervalCount[v]++
	}

	return b
}

// node returns the node stored at permutation position pos.
func (b *lambdaBuckets) node(pos int) int { return b.indexToNode[pos] }

// remove drops node i from its interval as it is extracted at the top of
// the scan. The permutation entry stays in place; only the live count of
// its bucket shrinks.
func (b *lambdaBuckets) remove(i int) {
	b.intervalCount[b.lambda[i]]--
}

// swapPositions exchanges the nodes at two permutation positions, updating
// both inverse maps.
func (b *lambdaBuckets) swapPositions(oldPos, newPos int) {
	b.nodeToIndex[b.indexToNode[oldPos]] = newPos
	b.nodeToIndex[b.indexToNode[newPos]] = oldPos
	b.indexToNode[oldPos], b.indexToNode[newPos] = b.indexToNode[newPos], b.indexToNode[oldPos]
}

// increment raises lambda[k] by one bucket: k moves to the end of its
// current interval, the interval boundary slides left over it, and the
// higher interval absorbs it. Capped at n−1 (no-op beyond).
//
// Complexity: O(1).
func (b *lambdaBuckets) increment(k int) {
	if b.lambda[k] >= len(b.lambda)-1 {
		return
	}

	lk := b.lambda[k]
	oldPos := b.nodeToIndex[k]
	newPos := b.intervalPtr[lk] + b.intervalCount[lk] - 1
	b.swapPositions(oldPos, newPos)

	b.intervalCount[lk]--
	b.intervalCount[lk+1]++
	b.intervalPtr[lk+1] = newPos

	b.lambda[k]++
}

// decrement lowers lambda[j] by one bucket: j moves to the beginning of its
// current interval and the lower interval absorbs it. No-op at lambda==0.
//
// Complexity: O(1).
func (b *lambdaBuckets) decrement(j int) {
	if b.lambda[j] == 0 {
		return
	}

	lj := b.lambda[j]
	oldPos := b.nodeToIndex[j]
	newPos := b.intervalPtr[lj]
	b.swapPositions(oldPos, newPos)

	b.intervalCount[lj]--
	b.intervalCount[lj-1]++
	b.intervalPtr[lj]++
	b.intervalPtr[lj-1] = b.intervalPtr[lj] - b.intervalCount[lj-1]

	b.lambda[j]--
}
