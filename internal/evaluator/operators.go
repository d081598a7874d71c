package evaluator

import "math"

func (e *Evaluator) evalPrefixExpression(operator string, right Object) (Object, *EvalError) {
	switch operator {
	case "-":
		if right.Type() == INTEGER_OBJ {
			return &Integer{Value: -right.(*Integer).Value}, nil
		}
		if right.Type() == FLOAT_OBJ {
			return &Float{Value: -right.(*Float).Value}, nil
		}
		return nil, newError(UnsupportedExpression, "unknown operator: %s%s", operator, right.Type())
	case "+":
		if right.Type() == INTEGER_OBJ || right.Type() == FLOAT_OBJ {
			return right, nil
		}
		return nil, newError(UnsupportedExpression, "unknown operator: %s%s", operator, right.Type())
	default:
		return nil, newError(UnsupportedExpression, "unknown operator: %s%s", operator, right.Type())
	}
}

func (e *Evaluator) evalInfixExpression(operator string, left, right Object) (Object, *EvalError) {
	if left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ {
		return e.evalIntegerInfixExpression(operator, left.(*Integer), right.(*Integer))
	}

	// Implicit Int -> Float promotion
	if left.Type() == INTEGER_OBJ && right.Type() == FLOAT_OBJ {
		left = &Float{Value: float64(left.(*Integer).Value)}
	}
	if left.Type() == FLOAT_OBJ && right.Type() == INTEGER_OBJ {
		right = &Float{Value: float64(right.(*Integer).Value)}
	}

	if left.Type() == FLOAT_OBJ && right.Type() == FLOAT_OBJ {
		return e.evalFloatInfixExpression(operator, left.(*Float), right.(*Float))
	}
	if left.Type() == STRING_OBJ && right.Type() == STRING_OBJ {
		return e.evalStringInfixExpression(operator, left.(*String), right.(*String))
	}
	if left.Type() == BOOLEAN_OBJ && right.Type() == BOOLEAN_OBJ {
		switch operator {
		case "==":
			return nativeBoolToBooleanObject(left.(*Boolean).Value == right.(*Boolean).Value), nil
		case "!=":
			return nativeBoolToBooleanObject(left.(*Boolean).Value != right.(*Boolean).Value), nil
		}
		return nil, newError(UnsupportedExpression, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}

	// Mismatched types compare unequal and support nothing else.
	switch operator {
	case "==":
		return FALSE, nil
	case "!=":
		return TRUE, nil
	}
	return nil, newError(UnsupportedExpression, "type mismatch: %s %s %s", left.Type(), operator, right.Type())
}

func (e *Evaluator) evalIntegerInfixExpression(operator string, left, right *Integer) (Object, *EvalError) {
	switch operator {
	case "+":
		return &Integer{Value: left.Value + right.Value}, nil
	case "-":
		return &Integer{Value: left.Value - right.Value}, nil
	case "*":
		return &Integer{Value: left.Value * right.Value}, nil
	case "/":
		// Division is always true division, even on integers.
		if right.Value == 0 {
			return nil, newError(UnsupportedExpression, "division by zero")
		}
		return &Float{Value: float64(left.Value) / float64(right.Value)}, nil
	case "%":
		if right.Value == 0 {
			return nil, newError(UnsupportedExpression, "division by zero")
		}
		return &Integer{Value: left.Value % right.Value}, nil
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value), nil
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value), nil
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value), nil
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value), nil
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value), nil
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value), nil
	default:
		return nil, newError(UnsupportedExpression, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalFloatInfixExpression(operator string, left, right *Float) (Object, *EvalError) {
	switch operator {
	case "+":
		return &Float{Value: left.Value + right.Value}, nil
	case "-":
		return &Float{Value: left.Value - right.Value}, nil
	case "*":
		return &Float{Value: left.Value * right.Value}, nil
	case "/":
		if right.Value == 0 {
			return nil, newError(UnsupportedExpression, "division by zero")
		}
		return &Float{Value: left.Value / right.Value}, nil
	case "%":
		if right.Value == 0 {
			return nil, newError(UnsupportedExpression, "division by zero")
		}
		return &Float{Value: math.Mod(left.Value, right.Value)}, nil
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value), nil
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value), nil
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value), nil
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value), nil
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value), nil
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value), nil
	default:
		return nil, newError(UnsupportedExpression, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalStringInfixExpression(operator string, left, right *String) (Object, *EvalError) {
	switch operator {
	case "+":
		return &String{Value: left.Value + right.Value}, nil
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value), nil
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value), nil
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value), nil
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value), nil
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value), nil
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value), nil
	default:
		return nil, newError(UnsupportedExpression, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}
