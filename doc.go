// Package dijkstra is a step-by-step walkthrough of Dijkstra's shortest-path
// algorithm: every call finalizes one vertex and exposes the whole search
// state, so a front-end can show how the frontier and the tentative
// distances evolve.
//
// The module is organized in small layers, each importing only the ones
// above it:
//
//	core/      — immutable weighted directed graph (vertices, edges, validation)
//	dijkstra/  — Stepper: the incremental engine, snapshots, and a one-shot Dijkstra
//	scenario/  — HCL scenario files: vertices with display positions, edges, start/goal
//	render/    — text rendering of snapshots (queue line, distance table, layout)
//	cmd/dijkstra-stepper — interactive terminal front-end
//
// Quick example:
//
//	A ──4──▶ B ──3──▶ C
//	 ╲       ▲
//	  2      1
//	   ╲     │
//	    ▶ D ─┘   (plus D ──7──▶ C)
//
// Stepping from A finalizes A, D, B and C in that order; the shortest path
// to C is A → D → B → C with cost 6.
//
//	go run ./cmd/dijkstra-stepper -auto
package dijkstra
