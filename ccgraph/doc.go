// Package ccgraph implements a reusable union-find connected-component
// graph over column positions, used by the solver's Phase 1 r=2 pivot
// refinement (spec.md §4.6): when several V-rows tie at v_degree=2, the
// solver adds an edge between each row's two V-column positions and asks
// this graph for a node belonging to the largest component, which yields a
// tie-break shown to reduce fill-in during elimination.
//
// The disjoint-set logic (path compression, union by rank) is the same
// shape as the teacher's Kruskal MST union-find, generalized from string
// vertex IDs to dense integer column positions and extended with live
// component-size tracking so the "largest component" query is O(1) instead
// of a full re-scan.
//
//	go get github.com/katalvlaran/raptorq/ccgraph
package ccgraph
