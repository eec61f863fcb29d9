// Package ordering implements the merge-order planning core: dotted
// wildcard pattern matching, the push-down/bubble-up planner that orders
// one group of assemblies, the order directive file parser, and the
// informational order record writer.
//
// The planner itself is pure. Reading the directive file and writing the
// record are the only I/O in the package and both go through the
// types.FS seam so tests run against an in-memory filesystem.
package ordering
