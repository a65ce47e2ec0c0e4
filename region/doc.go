// SPDX-License-Identifier: MIT

// Package region finds connected regions of cells in a grid.Array2.
//
// What:
//
//   - Neighbors yields the in-bounds neighbours of a cell under Conn4 or Conn8.
//   - Components groups the cells accepted by a predicate into connected
//     regions ("islands"), each listed in BFS order from its first cell in
//     row-major order.
//   - Labels writes the component index of every cell into a new Array2[int]
//     (-1 for rejected cells).
//   - Bridge finds the fewest rejected cells that must be converted to join two
//     components (0-1 BFS: stepping onto an accepted cell is free).
//
// Complexity:
//
//   - Components, Labels, Bridge: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//
// Errors:
//
//   - ErrComponentIndex: a requested component index is out of range.
//
// Arrays are only read through immutable sequences, so calls may overlap
// other immutable borrows of the same array.
package region
