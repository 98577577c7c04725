// Package wayfind is a generic, allocation-conscious pathfinding engine —
// one A*-family search kernel that serves every graph substrate you can
// express as a neighbor-expansion function.
//
// 🚀 What is wayfind?
//
//	A modern, generics-first library that brings together:
//		• Contracts: pluggable Graph, Heuristic, EdgeModifier and PathProcessor
//		• Kernel: best-first A* with budgets, deterministic tie-breaks and pooling
//		• Dijkstra: full-frontier expansion into a shortest-path table
//		• Routing: multi-stop assembly, option evaluation with retry, batching
//
// ✨ Why choose wayfind?
//
//   - Substrate-agnostic – nav meshes, grids and line graphs all plug into
//     the same kernel through one Expand function
//   - Allocation-conscious – pooled frontier/open-set buffers, reusable
//     result objects, no allocations in the hot loop after warm-up
//   - Predictable – documented FIFO tie-breaking, deterministic results,
//     budget cutoffs distinguishable from true unreachability
//
// Under the hood, everything is organized under four subpackages:
//
//	core/  — generic search contracts, cost semantics, reference graph
//	astar/ — the search kernel: A* and Dijkstra modes, results, pooling
//	route/ — request objects, multi-stop paths, option retry, batches
//	grid/  — 2D cost-field substrate with Manhattan/Octile heuristics
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    1     1
//	    │     │
//	    C──5──D
//
//	searching A→D prefers A→B→D (cost 2) over A→C→D (cost 6).
//
// Dive into each package's doc.go for full examples and complexity notes.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
