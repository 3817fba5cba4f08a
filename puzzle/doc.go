// Package puzzle defines the contract between the CLI and the per-day
// solvers: a Solver turns the raw input text into Answers, a Registry maps
// day numbers to solvers, and a Runner executes one day with timing logs.
package puzzle
