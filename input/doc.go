// Package input locates and reads a puzzle input named on the command line.
//
// An argument of "-" reads standard input. Anything else is resolved as a
// file path, trying in order: the path as an absolute path, the path relative
// to the working directory, then the path under each search directory
// (default "inputs/").
package input
