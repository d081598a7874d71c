package evaluator_test

import (
	"testing"

	"github.com/nanolang/nano/internal/evaluator"
)

func testEval(t *testing.T, input string, env *evaluator.Environment) evaluator.Object {
	t.Helper()
	obj, err := evaluator.Evaluate(input, env)
	if err != nil {
		t.Fatalf("Evaluate(%q) failed: %s", input, err)
	}
	return obj
}

func testEvalError(t *testing.T, input string, env *evaluator.Environment) *evaluator.EvalError {
	t.Helper()
	_, err := evaluator.Evaluate(input, env)
	if err == nil {
		t.Fatalf("Evaluate(%q) should have failed", input)
	}
	return err
}

func expectInteger(t *testing.T, obj evaluator.Object, want int64) {
	t.Helper()
	result, ok := obj.(*evaluator.Integer)
	if !ok {
		t.Fatalf("object is not Integer. got=%T (%+v)", obj, obj)
	}
	if result.Value != want {
		t.Errorf("wrong integer value. got=%d, want=%d", result.Value, want)
	}
}

func expectFloat(t *testing.T, obj evaluator.Object, want float64) {
	t.Helper()
	result, ok := obj.(*evaluator.Float)
	if !ok {
		t.Fatalf("object is not Float. got=%T (%+v)", obj, obj)
	}
	if result.Value != want {
		t.Errorf("wrong float value. got=%g, want=%g", result.Value, want)
	}
}

func expectBoolean(t *testing.T, obj evaluator.Object, want bool) {
	t.Helper()
	result, ok := obj.(*evaluator.Boolean)
	if !ok {
		t.Fatalf("object is not Boolean. got=%T (%+v)", obj, obj)
	}
	if result.Value != want {
		t.Errorf("wrong boolean value. got=%t, want=%t", result.Value, want)
	}
}

func TestIntegerArithmetic(t *testing.T) {
	env := evaluator.NewEnvironment()
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"-5", -5},
		{"+5", 5},
		{"1 + 2", 3},
		{"7 - 10", -3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"5 % 3", 2},
		{"-7 % 3", -1},
		{"-(1 + 2)", -3},
	}
	for _, tt := range tests {
		expectInteger(t, testEval(t, tt.input, env), tt.want)
	}
}

func TestTrueDivision(t *testing.T) {
	env := evaluator.NewEnvironment()
	// Division always yields a float, even with integer operands.
	tests := []struct {
		input string
		want  float64
	}{
		{"10 / 4", 2.5},
		{"7 / 2", 3.5},
		{"10 / 2", 5},
		{"1 / 3", 1.0 / 3.0},
	}
	for _, tt := range tests {
		expectFloat(t, testEval(t, tt.input, env), tt.want)
	}
}

func TestFloatArithmetic(t *testing.T) {
	env := evaluator.NewEnvironment()
	expectFloat(t, testEval(t, "2.5 * 2", env), 5)
	expectFloat(t, testEval(t, "1 + 0.5", env), 1.5)
	expectFloat(t, testEval(t, "-1.5", env), -1.5)
	expectFloat(t, testEval(t, "7.5 % 2", env), 1.5)
}

func TestComparisons(t *testing.T) {
	env := evaluator.NewEnvironment()
	tests := []struct {
		input string
		want  bool
	}{
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 > 1", true},
		{"1 >= 1", true},
		{"1 <= 0", false},
		{"3 == 3", true},
		{"3 != 3", false},
		{"1.5 < 2", true},
		{"2 == 2.0", true},
		{"true == true", true},
		{"true != false", true},
		{`"a" < "b"`, true},
		{`"abc" == "abc"`, true},
		{`1 == "1"`, false},
		{`1 != "1"`, true},
	}
	for _, tt := range tests {
		expectBoolean(t, testEval(t, tt.input, env), tt.want)
	}
}

func TestStringOperations(t *testing.T) {
	env := evaluator.NewEnvironment()
	obj := testEval(t, `"foo" + "bar"`, env)
	str, ok := obj.(*evaluator.String)
	if !ok {
		t.Fatalf("object is not String. got=%T", obj)
	}
	if str.Value != "foobar" {
		t.Errorf("wrong string value: %q", str.Value)
	}
}

func TestVariableReferences(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Integer{Value: 4})
	env.Set("pi", &evaluator.Float{Value: 3.14})

	expectInteger(t, testEval(t, "x * x", env), 16)
	expectFloat(t, testEval(t, "pi", env), 3.14)
	expectBoolean(t, testEval(t, "x > 3", env), true)
}

func TestUndefinedVariable(t *testing.T) {
	env := evaluator.NewEnvironment()
	err := testEvalError(t, "nope + 1", env)
	if err.Kind != evaluator.UndefinedVariable {
		t.Errorf("wrong error kind: %s", err.Kind)
	}
}

func TestUnsupportedExpressions(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Integer{Value: 1})
	env.Set("y", &evaluator.Integer{Value: 2})

	for _, input := range []string{
		"x and y",
		"x or y",
		"f(x)",
		"x[0]",
		"x.y",
		`1 + "a"`,
		"true + false",
		"1 / 0",
	} {
		err := testEvalError(t, input, env)
		if err.Kind != evaluator.UnsupportedExpression {
			t.Errorf("Evaluate(%q): wrong error kind %s", input, err.Kind)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	env := evaluator.NewEnvironment()
	for _, input := range []string{"", "1 +", "1 2", "(1", "@"} {
		err := testEvalError(t, input, env)
		if err.Kind != evaluator.SyntaxError {
			t.Errorf("Evaluate(%q): wrong error kind %s", input, err.Kind)
		}
	}
}

func TestEvaluationDoesNotMutateEnvironment(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Integer{Value: 1})

	testEval(t, "x + 1", env)
	testEvalError(t, "x + missing", env)

	if env.Len() != 1 {
		t.Errorf("environment grew during evaluation: %d bindings", env.Len())
	}
	obj, _ := env.Get("x")
	expectInteger(t, obj, 1)
}

func TestInspect(t *testing.T) {
	env := evaluator.NewEnvironment()
	tests := []struct {
		input string
		want  string
	}{
		{"10 / 2", "5"},
		{"10 / 4", "2.5"},
		{"1 < 2", "true"},
		{"1 > 2", "false"},
		{"40 + 2", "42"},
		{`"verbatim"`, "verbatim"},
	}
	for _, tt := range tests {
		if got := testEval(t, tt.input, env).Inspect(); got != tt.want {
			t.Errorf("Inspect(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
