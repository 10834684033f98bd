// Package eval implements the tree-walking evaluator for Culebra.
//
// The evaluator applies a parsed program to an environment chain. The
// root environment holds built-ins and globals and survives for the
// lifetime of the evaluator, which is what lets a REPL accumulate state
// across submissions. Function calls extend the callee's definition
// environment with a fresh frame, giving the language lexical scoping
// and closures that observe later mutations of their definition scope.
//
// Scoping follows the assign-to-nearest-else-root rule: assignment
// mutates the nearest enclosing binding of the name, and creates fresh
// names in the root environment. Function parameters are the exception,
// bound directly in the call frame.
//
// Control flow uses sentinel signals threaded through eval's error
// return. return unwinds to the innermost function call and nothing
// else; break and continue unwind to the innermost loop. A signal that
// escapes to the top level becomes a runtime error ("return outside of
// function").
//
// Operator semantics:
//   - Arithmetic promotes int to float on mixed operands; / always
//     produces a float. + concatenates strings and arrays.
//   - Comparisons order numbers (across int/float) and strings; equality
//     compares int and float numerically and everything else strictly.
//   - and/or short-circuit and return the deciding operand value itself.
//   - Conditions use truthiness: false, 0, 0.0, "", [] and null are
//     falsy.
//
// Runtime errors abort evaluation; there is no user-level catch. The
// evaluator remembers the node it was working on (LastNode) so the CLI
// can place a caret into the source.
package eval
