// Package voxpath is an incremental A* engine for 3-D voxel grids: edit walls
// and endpoints, search, edit again, and only pay for what changed.
//
// What is voxpath?
//
//	A small library plus a command-line driver that brings together:
//		• voxel grid: dense x×y×z cells, walls, start and goal, resize in place
//		• 26-way adjacency: straight, planar and spatial diagonal moves
//		• corner-cutting prevention, switchable per grid
//		• A* search that leaves its metadata on the grid for the next query
//		• a mutex-guarded engine session with structured logging
//
// Why incremental?
//
//   - A repeated query on an unchanged grid is answered without exploring.
//   - A wall toggled before any search clears one cell, not the whole grid.
//   - Renderers read cells and the stored path, never the search internals.
//
// Everything is organized under these packages:
//
//	voxel/             Coord, Cell, Grid, Neighbors, Resize, Distance
//	astar/             Search, Outcome, Result, options and invariant errors
//	engine/            Engine: one lock around a Grid, slog logging, session id
//	internal/config/   VOXPATH_* settings from the environment or a .env file
//	internal/script/   line-oriented command language used by the CLI and tests
//	cmd/voxpath/       the command-line driver
//	examples/          runnable scenarios
//
// Quick ASCII example (layer z=0, S start, G goal, # wall, * path):
//
//	. . # . G
//	. . # . *
//	S * * * .
//
// Step costs are 10 straight, 14 planar diagonal and 17 spatial diagonal.
//
//	go get github.com/katalvlaran/voxpath
package voxpath
