package evaluator

import (
	"github.com/nanolang/nano/internal/ast"
)

// Evaluator walks the restricted expression AST. It owns no state of its own;
// all bindings live in the Environment, which evaluation never mutates.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Eval(node ast.Expression, env *Environment) (Object, *EvalError) {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}, nil
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}, nil
	case *ast.StringLiteral:
		return &String{Value: node.Value}, nil
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value), nil
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return e.evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpression:
		left, err := e.Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return e.evalInfixExpression(node.Operator, left, right)
	default:
		return nil, newError(UnsupportedExpression, "unsupported expression: %T", node)
	}
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) (Object, *EvalError) {
	if val, ok := env.Get(node.Value); ok {
		return val, nil
	}
	return nil, newError(UndefinedVariable, "Variable '%s' is not defined", node.Value)
}

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}
