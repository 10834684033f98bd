package eval

import (
	"github.com/culebra-lang/culebra/internal/types"
	"github.com/culebra-lang/culebra/internal/value"
)

// Control flow signals travel through the error return of eval. They are
// not user-visible errors: returnSignal is caught by the function-call
// evaluator, breakSignal and continueSignal by the loop evaluators.
// A signal that reaches the top level is converted into a runtime error.

// returnSignal unwinds to the innermost enclosing function call,
// carrying the returned value.
type returnSignal struct {
	value value.Value
}

func (*returnSignal) Error() string { return "return outside of function" }

// breakSignal unwinds to the innermost enclosing loop.
type breakSignal struct{}

func (*breakSignal) Error() string { return "break outside of loop" }

// continueSignal unwinds to the innermost enclosing loop iteration.
type continueSignal struct{}

func (*continueSignal) Error() string { return "continue outside of loop" }

// evalReturn evaluates the return expression and raises the signal.
func (e *Evaluator) evalReturn(node *types.ReturnStatement, env *value.Env) (value.Value, error) {
	val, err := e.eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	return nil, &returnSignal{value: val}
}

// evalConditional evaluates an if statement: the body runs when the
// condition is truthy, otherwise the chained elif/else conditional runs
// if present.
func (e *Evaluator) evalConditional(node *types.Conditional, env *value.Env) (value.Value, error) {
	condition, err := e.eval(node.Condition, env)
	if err != nil {
		return nil, err
	}

	if value.Truthy(condition) {
		return e.eval(node.Body, env)
	}
	if node.Otherwise != nil {
		return e.eval(node.Otherwise, env)
	}

	return value.Null{}, nil
}

// evalWhile runs the body while the condition stays truthy. break ends
// the loop, continue skips to the next condition check.
func (e *Evaluator) evalWhile(node *types.While, env *value.Env) (value.Value, error) {
	for {
		condition, err := e.eval(node.Condition, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(condition) {
			return value.Null{}, nil
		}

		if _, err := e.eval(node.Body, env); err != nil {
			switch err.(type) {
			case *breakSignal:
				return value.Null{}, nil
			case *continueSignal:
				continue
			}

			return nil, err
		}
	}
}

// evalFor runs pre once, then alternates body and post while the
// condition stays truthy. continue still runs the post statement, so a
// canonical counting loop cannot hang on it.
func (e *Evaluator) evalFor(node *types.For, env *value.Env) (value.Value, error) {
	if _, err := e.eval(node.Pre, env); err != nil {
		return nil, err
	}

	for {
		condition, err := e.eval(node.Condition, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(condition) {
			return value.Null{}, nil
		}

		if _, err := e.eval(node.Body, env); err != nil {
			if _, ok := err.(*breakSignal); ok {
				return value.Null{}, nil
			}
			if _, ok := err.(*continueSignal); !ok {
				return nil, err
			}
		}

		if _, err := e.eval(node.Post, env); err != nil {
			return nil, err
		}
	}
}
