// Package parser turns Culebra token sequences into abstract syntax trees.
//
// The parser is hand-written recursive descent. Statements dispatch on
// their leading token, with a single token of lookahead separating
// "identifier = ..." assignments and "identifier(...)" calls from plain
// identifier expressions. Expressions use one function per precedence
// tier, folding left-associative operator chains:
//
//	or/and  <  comparisons  <  + -  <  * /  <  unary  <  atoms
//
// Prefix operators stack right-to-left. Atoms take trailing "[index]"
// subscripts with left-associative chaining.
//
// Blocks are the indentation-sensitive part of the grammar: a block is a
// colon, a newline, an INDENT, any number of statements, and the matching
// DEDENT. Blank lines are insignificant everywhere. Elif/else chains are
// normalized during parsing into nested Conditional nodes, the terminal
// else holding a constant-true condition.
//
// Error Policy:
//
// The parser records only the first error, together with the token it was
// looking at, and never panics or throws. After an error it unwinds out
// of the broken construct, skips one token, and keeps collecting
// statements, so a program node is always produced. Callers check
// HasError and use Err().Token to position the report:
//
//	p := parser.New(tokens)
//	program := p.Parse()
//	if p.HasError() {
//	    fmt.Println(p.Err())
//	}
package parser
