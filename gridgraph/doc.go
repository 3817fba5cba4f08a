// Package gridgraph treats a grid.Grid as an implicit graph whose vertices
// are cells and whose edges join neighbouring cells under Conn4 or Conn8.
//
// What:
//
//   - FloodFill marks every cell reachable from a start cell through
//     passable cells.
//   - Components labels contiguous regions ("islands") of member cells.
//
// Why:
//
//   - Inside/outside classification of a drawn outline (flood from a border).
//   - Counting regions, lakes and islands in puzzle maps.
//
// Complexity:
//
//   - FloodFill:  O(W×H×d), Memory: O(W×H)  (d = 4 or 8 neighbours).
//   - Components: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrStartOutOfRange: FloodFill start lies outside the grid.
package gridgraph
