// Package value defines Culebra's runtime values and the lexical
// environment chain.
//
// Values form a small closed set: null, booleans, 64-bit integers, 64-bit
// floats, strings, arrays, user functions, and host builtins. Numeric
// equality crosses the int/float divide (1 equals 1.0); all other
// comparisons are type-strict. Truthy encodes the language's condition
// semantics: false, 0, 0.0, "", [] and null are falsy, everything else is
// true.
//
// Environments link name-to-value maps through parent pointers. Lookup
// walks the chain outward. Assignment mutates the nearest existing
// binding, and falls through to the root environment for fresh names, so
// a new name assigned inside a function body is a global. AssignLocal
// inserts directly into one scope and is how call frames bind parameters.
//
// Function values hold a shared reference to their definition
// environment, not a snapshot: a closure observes mutations made to that
// scope after the definition was evaluated.
package value
