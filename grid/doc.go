// Package grid provides Grid[T], a fixed-shape two-dimensional container
// backed by a single row-major slice.
//
// What:
//
//   - Grid[T] stores width*height cells; index = col + row*width is the only
//     layout formula used anywhere in the package.
//   - FromText maps a rectangular block of characters through a per-cell
//     function; FromSlice wraps an existing flat slice.
//   - At/Ref/Set give bounds-checked positional access. Out of bounds is not
//     an error: At reports false, Ref returns nil.
//   - Entry and EntryMut are offset views anchored at one position. They are
//     recomputed on every query, so they never hold stale indices.
//   - All, Row and Col are lazy iterators (range-over-func); Find returns the
//     first row-major match.
//   - TransposeSquare swaps in place; Transposed returns a new grid with the
//     dimensions exchanged.
//
// Complexity:
//
//   - At, Ref, Set, Entry queries: O(1).
//   - All, Find, Count, Render: O(W×H).
//   - Row: O(W), Col: O(H).
//   - TransposeSquare: O(N²) time, O(1) extra memory.
//   - Transposed: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: text cell count differs from width*height.
//   - ErrDimensionMismatch: slice length differs from width*height.
//   - ErrNonSquare: TransposeSquare on a non-square grid.
//
// A Grid is not safe for concurrent mutation.
package grid
