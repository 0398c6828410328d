// Package equilibrium provides the shared primitives of the statics puzzles.
//
// The package defines the contract constants and small value types used by
// both puzzle engines:
//
//   - [Gravity], [Epsilon]: the physical constant and the balance tolerance
//   - [Outcome]: the result kind of an evaluation
//   - [Direction]: the sense of a force along the ramp
//   - [Rand]: the random source engines draw from
//
// # Errors
//
// Outcomes are plain values; nothing in the engines is signalled through
// errors except programmer and configuration mistakes, which use the
// sentinel errors in errors.go and are matched with errors.Is.
//
// # Thread Safety
//
// Nothing in this package holds mutable state. The engines built on it are
// NOT safe for concurrent use.
package equilibrium
