package eval

import (
	"github.com/juju/errors"

	"github.com/culebra-lang/culebra/internal/types"
	"github.com/culebra-lang/culebra/internal/value"
)

// Evaluator walks Culebra ASTs and applies their effects to an
// environment chain. The root environment lives for the whole evaluator
// and is where built-ins and globals reside; function calls hang child
// environments off each function's definition environment.
//
// Evaluation is single-threaded and strictly in source order: statement
// sequences run top to bottom, binary operands left before right, and
// call arguments left to right before any parameter binds.
type Evaluator struct {
	root     *value.Env
	lastNode types.Node // Node under evaluation when an error surfaced
}

// New creates an evaluator with a fresh root environment populated with
// the built-in functions.
func New() *Evaluator {
	e := &Evaluator{root: value.NewEnv()}
	e.registerBuiltins()

	return e
}

// Root exposes the root environment, primarily for inspecting global
// bindings after an evaluation.
func (e *Evaluator) Root() *value.Env {
	return e.root
}

// LastNode returns the AST node the evaluator was working on when it
// last stopped. Error reporting uses its token to place the caret.
func (e *Evaluator) LastNode() types.Node {
	return e.lastNode
}

// Evaluate runs a program against the evaluator's root environment.
// Programs produce no value, only effects on the environment; control
// flow signals escaping to the top level are runtime errors.
func (e *Evaluator) Evaluate(program *types.Program) error {
	for _, statement := range program.Statements {
		if _, err := e.eval(statement, e.root); err != nil {
			switch err.(type) {
			case *returnSignal:
				return errors.New("return outside of function")
			case *breakSignal:
				return errors.New("break outside of loop")
			case *continueSignal:
				return errors.New("continue outside of loop")
			}

			return err
		}
	}

	return nil
}

// eval is the central dispatcher. It notes the node for error reporting
// and pattern-matches on the node family.
func (e *Evaluator) eval(node types.Node, env *value.Env) (value.Value, error) {
	e.lastNode = node

	switch node := node.(type) {
	// Literal expressions evaluate to their constant.
	case *types.IntegerExpr:
		return value.Int(node.Value), nil
	case *types.FloatExpr:
		return value.Float(node.Value), nil
	case *types.StringExpr:
		return value.String(node.Value), nil
	case *types.BoolExpr:
		return value.Bool(node.Value), nil
	case *types.ArrayExpr:
		return e.evalArray(node, env)

	case *types.IdentExpr:
		return e.evalIdent(node, env)

	case *types.BinaryExpr:
		return e.evalBinary(node, env)
	case *types.UnaryExpr:
		return e.evalUnary(node, env)
	case *types.IndexExpr:
		return e.evalIndex(node, env)

	case *types.Assignment:
		return e.evalAssignment(node, env)
	case *types.Conditional:
		return e.evalConditional(node, env)
	case *types.While:
		return e.evalWhile(node, env)
	case *types.For:
		return e.evalFor(node, env)
	case *types.Block:
		return e.evalBlock(node, env)

	case *types.FunctionDefinition:
		return e.evalFunctionDefinition(node, env)
	case *types.FunctionCall:
		return e.evalCall(node, env)
	case *types.ReturnStatement:
		return e.evalReturn(node, env)
	case *types.BreakStatement:
		return nil, &breakSignal{}
	case *types.ContinueStatement:
		return nil, &continueSignal{}

	default:
		// Unrecognized node types indicate a parser bug.
		return nil, errors.Errorf("unknown AST node type: %T", node)
	}
}

// evalIdent resolves a variable reference through the scope chain.
func (e *Evaluator) evalIdent(node *types.IdentExpr, env *value.Env) (value.Value, error) {
	if val, ok := env.Get(node.Name); ok {
		return val, nil
	}

	return nil, errors.Errorf("undefined variable '%s'", node.Name)
}

// evalArray evaluates an array literal, elements left to right.
func (e *Evaluator) evalArray(node *types.ArrayExpr, env *value.Env) (value.Value, error) {
	elements := make([]value.Value, len(node.Elements))
	for i, elem := range node.Elements {
		val, err := e.eval(elem, env)
		if err != nil {
			return nil, err
		}
		elements[i] = val
	}

	return value.NewArray(elements...), nil
}

// evalAssignment evaluates the right-hand side and writes it through the
// environment's assign-to-nearest-else-root rule.
func (e *Evaluator) evalAssignment(node *types.Assignment, env *value.Env) (value.Value, error) {
	val, err := e.eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	env.Assign(node.Identifier.Name, val)

	return value.Null{}, nil
}

// evalBlock runs the statements of a block in order. Blocks produce no
// value; control flow signals pass through untouched.
func (e *Evaluator) evalBlock(node *types.Block, env *value.Env) (value.Value, error) {
	for _, statement := range node.Statements {
		if _, err := e.eval(statement, env); err != nil {
			return nil, err
		}
	}

	return value.Null{}, nil
}
