// Package types defines the abstract syntax tree for Culebra programs.
//
// Nodes divide into two families: Statement (assignments, control flow,
// definitions) and Expression (everything that produces a value). Every
// expression is also a statement, matching the language's bare-expression
// lines. All nodes carry the token that introduced them; runtime and parse
// errors reuse that token to point back into the source.
//
// Operator nodes do not store a separate operator field: a BinaryExpr or
// UnaryExpr is classified by the token type of its own token, and the
// evaluator dispatches on that.
//
// Two renderings exist:
//   - String() produces the canonical single-line form used by tests, e.g.
//     Assignment(Identifier(x), PlusOperation(Integer(1), Integer(2))).
//     Program joins its statements with newlines.
//   - Program.Pretty() produces a box-drawing tree, one node per line, for
//     the CLI's parser mode.
package types
