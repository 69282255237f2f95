// Package builder constructs the random graphs and orders used to exercise
// the fill, lexm, and lexp packages. It lives alongside them to centralize
// vertex ID schemes, RNG configuration, and the union-find connectivity
// fix-up used by RandomConnected, keeping them DRY and testable.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG and ID scheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn: base-36 strings ("0"…"z","10",…).
//     – HexIDFn:          lowercase hexadecimal ("0","a","ff",…).
//   - Constructors:
//     – Complete(n):                 the complete graph K_n.
//     – RandomConnected(n, p, ...):  Erdos-Renyi sampling with a
//     connectivity fix-up via union-find.
//     – RandomChordal(n, maxEdges, ...): a clique-tree chordal graph built
//     by the branch-growing half of the Markenzon-Vernet-Araujo method;
//     sibling cliques are never merged.
//     – RandomOrder(g, ...):         a Fisher-Yates shuffle of g's vertices.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option
//     constructors (WithRand(nil), WithIDScheme(nil)).
//   - Structured runtime errors (sentinels, wrapped with %w) for invalid
//     build parameters (n too small, p out of range, missing RNG).
//   - Deterministic output for a fixed seed: every stochastic constructor
//     only consumes randomness through the configured *rand.Rand.
package builder
