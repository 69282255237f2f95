// SPDX-License-Identifier: MIT
package graph

import "errors"

// Sentinel errors for graph construction and mutation.
//
// Callers MUST use errors.Is to branch on these; messages are not part
// of the contract and may gain context via %w wrapping.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID that
	// already exists in the graph.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a vertex ID
	// that is not present in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates AddEdge was called with from == to; this
	// graph type models simple graphs only (no self-loops).
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
)
