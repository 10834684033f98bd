package eval

import (
	"github.com/juju/errors"

	"github.com/culebra-lang/culebra/internal/types"
	"github.com/culebra-lang/culebra/internal/value"
	"github.com/culebra-lang/culebra/pkg/lexer"
)

// evalBinary evaluates binary operators. The operator is the node's own
// token type. and/or short-circuit and are handled before operand
// evaluation; every other operator evaluates both sides, left first.
func (e *Evaluator) evalBinary(node *types.BinaryExpr, env *value.Env) (value.Value, error) {
	switch node.Operator() {
	case lexer.TOKEN_AND:
		return e.evalAnd(node, env)
	case lexer.TOKEN_OR:
		return e.evalOr(node, env)
	}

	left, err := e.eval(node.Left, env)
	if err != nil {
		return nil, err
	}

	right, err := e.eval(node.Right, env)
	if err != nil {
		return nil, err
	}

	e.lastNode = node

	switch node.Operator() {
	// Arithmetic
	case lexer.TOKEN_PLUS:
		return evalAdd(left, right)
	case lexer.TOKEN_MINUS:
		return evalSub(left, right)
	case lexer.TOKEN_MUL:
		return evalMul(left, right)
	case lexer.TOKEN_DIV:
		return evalDiv(left, right)

	// Comparison
	case lexer.TOKEN_EQUAL:
		return value.Bool(left.Equals(right)), nil
	case lexer.TOKEN_NOT_EQUAL:
		return value.Bool(!left.Equals(right)), nil
	case lexer.TOKEN_LESS:
		return evalLess(left, right)
	case lexer.TOKEN_GREATER:
		return evalLess(right, left)
	case lexer.TOKEN_LESS_EQ:
		return evalLessEq(left, right)
	case lexer.TOKEN_GREATER_EQ:
		return evalLessEq(right, left)

	default:
		return nil, errors.Errorf("unknown binary operator: %s", node.Token().Type)
	}
}

// evalAnd short-circuits on a falsy left operand. The operand value
// itself is returned, not a coerced boolean.
func (e *Evaluator) evalAnd(node *types.BinaryExpr, env *value.Env) (value.Value, error) {
	left, err := e.eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	if !value.Truthy(left) {
		return left, nil
	}

	return e.eval(node.Right, env)
}

// evalOr short-circuits on a truthy left operand.
func (e *Evaluator) evalOr(node *types.BinaryExpr, env *value.Env) (value.Value, error) {
	left, err := e.eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(left) {
		return left, nil
	}

	return e.eval(node.Right, env)
}

// evalUnary evaluates prefix operators: numeric negation and logical not.
func (e *Evaluator) evalUnary(node *types.UnaryExpr, env *value.Env) (value.Value, error) {
	operand, err := e.eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	e.lastNode = node

	switch node.Operator() {
	case lexer.TOKEN_MINUS:
		switch v := operand.(type) {
		case value.Int:
			return value.Int(-v), nil
		case value.Float:
			return value.Float(-v), nil
		default:
			return nil, errors.Errorf("bad operand type for unary -: %s", operand.Type())
		}
	case lexer.TOKEN_NOT:
		return value.Bool(!value.Truthy(operand)), nil
	default:
		return nil, errors.Errorf("unknown unary operator: %s", node.Token().Type)
	}
}

// evalIndex evaluates a subscript access. Arrays index into their
// elements; strings yield one-character strings. Indices are 0-based
// integers.
func (e *Evaluator) evalIndex(node *types.IndexExpr, env *value.Env) (value.Value, error) {
	left, err := e.eval(node.Left, env)
	if err != nil {
		return nil, err
	}

	index, err := e.eval(node.Index, env)
	if err != nil {
		return nil, err
	}

	e.lastNode = node

	i, ok := index.(value.Int)
	if !ok {
		return nil, errors.Errorf("index must be an integer, not %s", index.Type())
	}

	switch container := left.(type) {
	case *value.Array:
		elem, ok := container.Get(int(i))
		if !ok {
			return nil, errors.Errorf("array index %d out of range", i)
		}

		return elem, nil
	case value.String:
		if i < 0 || int(i) >= len(container) {
			return nil, errors.Errorf("string index %d out of range", i)
		}

		return container[i : i+1], nil
	default:
		return nil, errors.Errorf("%s value is not subscriptable", left.Type())
	}
}

// Arithmetic operations. Numeric operands promote to float when mixed;
// + additionally concatenates strings and arrays.

func evalAdd(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Int(l + r), nil
		case value.Float:
			return value.Float(float64(l) + float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) + float64(r)), nil
		case value.Float:
			return value.Float(l + r), nil
		}
	case value.String:
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
	case *value.Array:
		if r, ok := right.(*value.Array); ok {
			return l.Concat(r), nil
		}
	}

	return nil, operandError("+", left, right)
}

func evalSub(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Int(l - r), nil
		case value.Float:
			return value.Float(float64(l) - float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) - float64(r)), nil
		case value.Float:
			return value.Float(l - r), nil
		}
	}

	return nil, operandError("-", left, right)
}

func evalMul(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Int(l * r), nil
		case value.Float:
			return value.Float(float64(l) * float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) * float64(r)), nil
		case value.Float:
			return value.Float(l * r), nil
		}
	}

	return nil, operandError("*", left, right)
}

// evalDiv implements true division: the result is a float even for two
// integer operands.
func evalDiv(left, right value.Value) (value.Value, error) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, operandError("/", left, right)
	}
	if rf == 0 {
		return nil, errors.New("division by zero")
	}

	return value.Float(lf / rf), nil
}

// evalLess implements the < ordering for numbers and strings. The other
// orderings reduce to it: a > b is b < a, and the non-strict forms add
// an equality check.
func evalLess(left, right value.Value) (value.Value, error) {
	if lf, ok := asFloat(left); ok {
		if rf, ok := asFloat(right); ok {
			return value.Bool(lf < rf), nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return value.Bool(ls < rs), nil
		}
	}

	return nil, operandError("<", left, right)
}

// evalLessEq evaluates left <= right, sharing the ordering with evalLess.
func evalLessEq(left, right value.Value) (value.Value, error) {
	less, err := evalLess(left, right)
	if err != nil {
		return nil, err
	}
	if bool(less.(value.Bool)) {
		return value.Bool(true), nil
	}

	return value.Bool(left.Equals(right)), nil
}

// asFloat widens a numeric value to float64.
func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n), true
	case value.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func operandError(op string, left, right value.Value) error {
	return errors.Errorf("unsupported operand types for %s: %s and %s",
		op, left.Type(), right.Type())
}
