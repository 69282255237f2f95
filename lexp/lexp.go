// SPDX-License-Identifier: MIT
//
// File: lexp.go
// Role: the LexP entry point and its arena-backed label-block list.
package lexp

import (
	"sort"

	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/order"
)

// noBlock marks the absence of a predecessor/successor block, taking
// the place of a nil pointer in the original doubly linked design
// (spec.md §9, "Pointer-graph in LEX P → arena + indices").
const noBlock = -1

// block is one label class: the set of vertices currently sharing a
// label, plus its position in the doubly linked label list. vertices
// preserves insertion order so pickAndRemove behaves deterministically
// despite Go's randomized map iteration.
type block struct {
	vertices []string
	members  map[string]bool
	prev     int
	next     int
}

// state holds the arena of label blocks and the bookkeeping needed to
// locate, move, and splice them for one LexP call.
type state struct {
	g           *graph.Graph
	arena       []block
	head        int
	vertexBlock map[string]int
	unordered   map[string]bool
}

// LexP computes a perfect elimination order for g (spec.md §4.3). g
// must be a simple, connected, undirected, chordal graph; running it on
// a non-chordal graph is well-defined but gives no documented guarantee
// (spec.md §9, open question 2).
//
// Complexity: each of the n iterations splices at most deg(cur) new
// blocks into the list. Blocks whose vertices are all numbered stay
// linked and are walked past by every later pickAndRemove, and
// removeFromBlock scans a block's vertex list, so the total is not
// bounded by O(n + m) (a path graph already costs O(n^2)).
func LexP(g *graph.Graph) order.Order {
	vertices := g.Vertices() // sorted; fixes the initial block's iteration order
	n := len(vertices)
	ord := make(order.Order, n)

	if n == 0 {
		return ord
	}

	st := &state{
		g:           g,
		vertexBlock: make(map[string]int, n),
		unordered:   make(map[string]bool, n),
	}
	root := block{
		vertices: append([]string(nil), vertices...),
		members:  make(map[string]bool, n),
		prev:     noBlock,
		next:     noBlock,
	}
	for _, v := range vertices {
		root.members[v] = true
		st.vertexBlock[v] = 0
		st.unordered[v] = true
	}
	st.arena = append(st.arena, root)
	st.head = 0

	for index := n - 1; index >= 0; index-- {
		cur := st.pickAndRemove()
		ord[index] = cur
		st.splitNeighborBlocks(cur)
	}

	return ord
}

// pickAndRemove scans the label list from head to tail and returns the
// first still-unnumbered vertex it finds, removing it from the
// unnumbered set (spec.md §4.3 step 2: highest-labeled unnumbered
// vertex, found by walking blocks from the head of the list).
func (st *state) pickAndRemove() string {
	for bIdx := st.head; bIdx != noBlock; bIdx = st.arena[bIdx].next {
		for _, v := range st.arena[bIdx].vertices {
			if st.unordered[v] {
				delete(st.unordered, v)

				return v
			}
		}
	}

	panic("lexp: no unnumbered vertex remains; precondition violated")
}

// splitNeighborBlocks moves every unnumbered neighbor of cur into a
// fresh block spliced immediately before its current block, then links
// the fresh blocks into the label list (spec.md §4.3 step 3). Neighbors
// sharing a block before this call end up sharing the same fresh block
// after it, preserving the label-class structure the algorithm relies
// on for correctness.
func (st *state) splitNeighborBlocks(cur string) {
	nbrs, err := st.g.Neighbors(cur)
	if err != nil {
		return // precondition violation (cur not in g): caller bug.
	}

	sorted := append([]string(nil), nbrs...)
	sort.Strings(sorted) // deterministic scan order; does not affect which blocks get created

	fix := make(map[int]int) // old block index -> freshly spliced block index
	for _, w := range sorted {
		if !st.unordered[w] {
			continue
		}

		oldIdx := st.vertexBlock[w]
		newIdx, ok := fix[oldIdx]
		if !ok {
			newIdx = len(st.arena)
			st.arena = append(st.arena, block{
				members: make(map[string]bool),
				prev:    noBlock,
				next:    noBlock,
			})
			fix[oldIdx] = newIdx
		}

		st.removeFromBlock(w, oldIdx)
		st.addToBlock(w, newIdx)
	}

	for oldIdx, newIdx := range fix {
		prevIdx := st.arena[oldIdx].prev
		if prevIdx == noBlock {
			st.head = newIdx
		} else {
			st.arena[prevIdx].next = newIdx
		}
		st.arena[newIdx].prev = prevIdx
		st.arena[newIdx].next = oldIdx
		st.arena[oldIdx].prev = newIdx
	}
}

// removeFromBlock deletes v from block idx's membership and ordered
// vertex list, maintaining the invariant that a vertex belongs to
// exactly one block's vertex list at a time.
func (st *state) removeFromBlock(v string, idx int) {
	blk := &st.arena[idx]
	delete(blk.members, v)
	for i, x := range blk.vertices {
		if x == v {
			blk.vertices = append(blk.vertices[:i], blk.vertices[i+1:]...)
			break
		}
	}
}

// addToBlock inserts v into block idx's membership and ordered vertex
// list, and records idx as v's current block.
func (st *state) addToBlock(v string, idx int) {
	blk := &st.arena[idx]
	blk.members[v] = true
	blk.vertices = append(blk.vertices, v)
	st.vertexBlock[v] = idx
}
