package eval

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"

	"github.com/culebra-lang/culebra/internal/value"
)

// Stdout is where the print builtin writes. Tests swap it for a buffer.
var Stdout io.Writer = os.Stdout

// registerBuiltins populates the root environment with the standard
// functions. They are ordinary bindings, so user code may shadow them.
func (e *Evaluator) registerBuiltins() {
	e.registerBuiltin("len", 1, builtinLen)      // len(string|array) -> int
	e.registerBuiltin("chr", 1, builtinChr)      // chr(int) -> one-character string
	e.registerBuiltin("print", -1, builtinPrint) // print(values...) -> null
}

// registerBuiltin wraps a builtin with arity checking and installs it in
// the root environment. An arity of -1 means variadic.
func (e *Evaluator) registerBuiltin(name string, arity int, fn func([]value.Value) (value.Value, error)) {
	wrapped := func(args []value.Value) (value.Value, error) {
		if arity >= 0 && len(args) != arity {
			return nil, errors.Errorf("%s() takes exactly %d argument(s), got %d",
				name, arity, len(args))
		}

		return fn(args)
	}

	e.root.AssignLocal(name, value.NewBuiltin(name, wrapped))
}

// builtinLen returns the length of a string or array.
func builtinLen(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case value.String:
		return value.Int(len(v)), nil
	case *value.Array:
		return value.Int(v.Len()), nil
	default:
		return nil, errors.Errorf("len() requires a string or array, got %s", args[0].Type())
	}
}

// builtinChr converts an integer code point to a one-character string.
func builtinChr(args []value.Value) (value.Value, error) {
	n, ok := args[0].(value.Int)
	if !ok {
		return nil, errors.Errorf("chr() requires an integer, got %s", args[0].Type())
	}

	return value.String(rune(n)), nil
}

// builtinPrint writes its arguments to standard output, space separated
// and newline terminated. Strings print raw, without quotes.
func builtinPrint(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = displayString(arg)
	}
	fmt.Fprintln(Stdout, strings.Join(parts, " "))

	return value.Null{}, nil
}

// displayString renders a value for print: strings show their content,
// everything else its standard rendering.
func displayString(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return string(s)
	}

	return v.String()
}
