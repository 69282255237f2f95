// Package lexp implements the Rose–Tarjan LEX P algorithm (spec.md
// §4.3): a perfect elimination ordering for a perfect elimination
// (chordal) graph, derived by walking a doubly linked list of label
// blocks and splicing in new blocks as vertices are numbered.
//
// The reference implementation (original_source/src/lex_p.h) allocates
// label blocks on the heap and links them with raw pointers, freeing
// each block by hand once the algorithm completes. This package
// follows spec.md §9's redesign guidance instead: label blocks live in
// a growable arena (a slice of block records) and are referenced by
// stable integer indices, so predecessor/successor links are plain
// ints, the "fix" map is index-to-index, and there is nothing to free.
//
// LexP assumes its input is already chordal; spec.md §9's open question
// 2 notes that running it on a non-chordal graph is well-defined but
// carries no documented guarantee — callers who need that guarantee
// should verify chordality with fill.IsPerfectEliminationOrder first.
package lexp
