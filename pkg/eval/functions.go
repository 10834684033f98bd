package eval

import (
	"github.com/juju/errors"

	"github.com/culebra-lang/culebra/internal/types"
	"github.com/culebra-lang/culebra/internal/value"
)

// evalFunctionDefinition constructs a function value closing over the
// current environment and binds it under the function's name. Because
// the closure shares the environment by reference, later mutations of
// the definition scope remain visible to the function body.
func (e *Evaluator) evalFunctionDefinition(
	node *types.FunctionDefinition,
	env *value.Env,
) (value.Value, error) {
	parameters := make([]string, len(node.Parameters))
	for i, p := range node.Parameters {
		parameters[i] = p.Name
	}

	fn := value.NewFunction(node.Name.Name, parameters, node.Body, env)
	env.Assign(node.Name.Name, fn)

	return value.Null{}, nil
}

// evalCall resolves the callee by name and applies it.
//
// For a user function the call frame is a child of the function's
// definition environment, not of the caller's: that is what makes
// scoping lexical. Arguments are evaluated in the caller's environment,
// left to right, before any parameter binds. Parameters bind directly in
// the frame, missing arguments stay unbound, extras are dropped.
//
// A return signal raised in the body unwinds exactly to here; a body
// that falls off the end produces null.
func (e *Evaluator) evalCall(node *types.FunctionCall, env *value.Env) (value.Value, error) {
	callee, ok := env.Get(node.Function.Name)
	if !ok {
		return nil, errors.Errorf("undefined variable '%s'", node.Function.Name)
	}

	args := make([]value.Value, len(node.Arguments))
	for i, argExpr := range node.Arguments {
		val, err := e.eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	e.lastNode = node

	switch fn := callee.(type) {
	case *value.Function:
		frame := fn.Env().Extend()
		for i, name := range fn.Parameters() {
			if i >= len(args) {
				break
			}
			frame.AssignLocal(name, args[i])
		}

		if _, err := e.eval(fn.Body(), frame); err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return ret.value, nil
			}

			return nil, err
		}

		return value.Null{}, nil

	case *value.Builtin:
		return fn.Apply(args)

	default:
		return nil, errors.Errorf("'%s' is not a function", node.Function.Name)
	}
}
