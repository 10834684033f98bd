// Package lexer provides lexical analysis for the Culebra scripting language.
//
// The lexer is the first stage of the interpreter pipeline, converting raw
// source text into the token sequence consumed by the parser.
//
// Token Recognition:
//   - Keywords: if, else, elif, while, for, break, continue, return, def,
//     true, false, and, or, not
//   - Identifiers: [A-Za-z_][A-Za-z0-9_]*; a digit followed by identifier
//     characters is emitted as INVALID_IDENTIFIER
//   - Literals: integers, floats (tried before integers), strings
//   - Operators: =, +, -, *, /, ==, !=, <, <=, >, >= (two-character forms
//     tried before their one-character prefixes)
//   - Delimiters: (, ), {, }, [, ], comma, colon, semicolon
//
// Layout:
//
// Culebra is indentation sensitive. The lexer reifies line structure into
// the stream: every logical line ends with a NEWLINE token, an increase in
// indentation emits INDENT carrying the new level, and each step back down
// emits one DEDENT per level closed. An indent unit is a single tab or
// exactly four spaces. Dedenting to a level that was never opened is the
// lexer's only hard error.
//
// String Processing:
//
// Double-quoted strings are single-line; triple-quoted strings ("""...""")
// may span newlines and are matched non-greedily. The escape sequences
// \n \t \r \f \b \\ \" are decoded during scanning, so token literals hold
// final string content. Unknown escapes are preserved literally.
//
// Position Tracking:
//
// Every token records the absolute byte offset of its first character in
// the scanned source. Error reporting converts offsets back to line and
// caret positions. Token equality used by tests ignores offsets.
//
// Error Handling:
//
// The lexer never fails on content: unrecognized bytes (and unterminated
// strings) become ILLEGAL_CHARACTER tokens and the scan continues. The
// output always ends with exactly one EOF token.
//
// Usage Example:
//
//	tokens, err := lexer.New("x = 1 + 2").Tokenize()
//	if err != nil {
//	    // inconsistent indentation
//	}
//	for _, tok := range tokens {
//	    fmt.Println(tok)
//	}
package lexer
