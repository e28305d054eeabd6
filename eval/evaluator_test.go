/*
File    : go-lox/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
)

// interpretSource runs src through the full pipeline (parse, resolve,
// interpret) on a fresh evaluator with captured output. Parse and
// resolve failures fail the test; the runtime error (if any) is
// returned for inspection.
func interpretSource(t *testing.T, src string) (string, *eval.RuntimeError) {
	t.Helper()

	stmts, parseErrors := parser.NewParser(src).Parse()
	if len(parseErrors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, parseErrors)
	}

	evaluator := eval.NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)

	if ok, resolveErrors := resolver.NewResolver(evaluator).Resolve(stmts); !ok {
		t.Fatalf("unexpected resolve errors for %q: %v", src, resolveErrors)
	}

	runtimeErr := evaluator.Interpret(stmts)
	return buf.String(), runtimeErr
}

// TestEvaluator_EndToEnd verifies complete programs against their
// expected stdout.
func TestEvaluator_EndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"arithmetic precedence",
			`print 1 + 2 * 3;`,
			"7\n",
		},
		{
			"block shadowing",
			`var a = 1; { var a = 2; print a; } print a;`,
			"2\n1\n",
		},
		{
			"closure counter",
			`fun make() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }
			 var c = make();
			 print c(); print c(); print c();`,
			"1\n2\n3\n",
		},
		{
			"super method dispatch",
			`class A { greet() { return "A"; } }
			 class B < A { greet() { return super.greet() + "B"; } }
			 print B().greet();`,
			"AB\n",
		},
		{
			"initializer and this",
			`class Counter { init(n) { this.n = n; } tick() { this.n = this.n + 1; return this.n; } }
			 var c = Counter(10);
			 print c.tick(); print c.tick();`,
			"11\n12\n",
		},
		{
			"for loop desugaring",
			`for (var i = 0; i < 3; i = i + 1) print i;`,
			"0\n1\n2\n",
		},
		{
			"for loop without initializer",
			`var i = 0; for (; i < 2; i = i + 1) print i; print i;`,
			"0\n1\n2\n",
		},
		{
			"while loop",
			`var n = 3; while (n > 0) { print n; n = n - 1; }`,
			"3\n2\n1\n",
		},
		{
			"if else",
			`if (1 > 2) print "then"; else print "else";`,
			"else\n",
		},
		{
			"logical operators return the deciding value",
			`print 0 or 2; print nil or 2; print 1 and 2; print false and 1;`,
			"0\n2\n2\nfalse\n",
		},
		{
			"string concatenation and comparison",
			`print "foo" + "bar"; print "abc" < "abd"; print "b" >= "a";`,
			"foobar\ntrue\ntrue\n",
		},
		{
			"equality has no coercion",
			`print 1 == 1; print 1 == "1"; print nil == nil; print true != false;`,
			"true\nfalse\ntrue\ntrue\n",
		},
		{
			"number rendering",
			`print 4 / 2; print 10 / 4; print 0.5; print -7; print 100;`,
			"2\n2.5\n0.5\n-7\n100\n",
		},
		{
			"typeof operator",
			`print typeof 1; print typeof "s"; print typeof nil; print typeof true;
			 print typeof clock; class A {} print typeof A; print typeof A();`,
			"number\nstring\nnil\nboolean\nfunction\nclass\nobject\n",
		},
		{
			"show operator",
			`print show 1 + show 2; print show nil;`,
			"12\nnil\n",
		},
		{
			"unary operators",
			`print -(3 + 4); print !true; print !nil; print !0;`,
			"-7\nfalse\ntrue\nfalse\n",
		},
		{
			"properties are per instance",
			`class Point {}
			 var p = Point(); var q = Point();
			 p.x = 1; q.x = 2;
			 print p.x; print q.x;`,
			"1\n2\n",
		},
		{
			"fields shadow methods",
			`class A { m() { return "method"; } }
			 var a = A();
			 print a.m();
			 a.m = "field";
			 print a.m;`,
			"method\nfield\n",
		},
		{
			"methods walk the super chain",
			`class A { who() { return "A"; } }
			 class B < A {}
			 class C < B {}
			 print C().who();`,
			"A\n",
		},
		{
			"init early return yields the instance",
			`class C { init() { this.x = 1; if (true) return; this.x = 2; } }
			 print C().x;`,
			"1\n",
		},
		{
			"calling init directly returns this",
			`class C { init() { this.x = 1; } }
			 var c = C();
			 print typeof c.init();`,
			"object\n",
		},
		{
			"functions render by name",
			`fun f() {} print f; print clock;`,
			"<fun f>\n<fun (native) clock>\n",
		},
		{
			"global redeclaration is silent",
			`var x = 1; var x = 2; print x;`,
			"2\n",
		},
		{
			"recursive function",
			`fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); }
			 print fib(10);`,
			"55\n",
		},
	}

	for _, tt := range tests {
		out, err := interpretSource(t, tt.input)
		if err != nil {
			t.Errorf("%s: unexpected runtime error: %v", tt.name, err)
			continue
		}
		if out != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, out)
		}
	}
}

// TestEvaluator_RuntimeErrors verifies that ill-typed operations
// produce the documented error kinds and messages.
func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input    string
		kind     eval.RuntimeErrorKind
		contains string
	}{
		{`print 1 / 0;`, eval.ZeroDivision, "Can not divide by zero"},
		{`print x;`, eval.UndefinedVariable, "Undefined variable `x`"},
		{`x = 1;`, eval.UndefinedVariable, "Undefined variable `x`"},
		{`print 1 + "a";`, eval.UnsupportedType, "two numbers or two strings"},
		{`print "a" - "b";`, eval.UnsupportedType, "can only operate over two numbers"},
		{`print 1 < "a";`, eval.UnsupportedType, "can only compare"},
		{`print -"a";`, eval.UnsupportedType, "Bad type for unary `-` operator"},
		{`print "hello"();`, eval.UnsupportedType, "is not callable"},
		{`fun f(a) {} f();`, eval.UnsupportedType, "Expected 1 arguments, but got 0"},
		{`clock(1);`, eval.UnsupportedType, "Expected 0 arguments, but got 1"},
		{`class A {} print A().missing;`, eval.UndefinedProperty, "Undefined property `missing`"},
		{`print (1).x;`, eval.UnsupportedType, "Only objects have properties"},
		{`var s = "s"; s.x = 1;`, eval.UnsupportedType, "Only objects have properties"},
		{`class Base {} class A < Base { m() { return super.m(); } } A().m();`, eval.UndefinedProperty, "Undefined property `m`"},
		{`var notAClass = 1; class A < notAClass {}`, eval.UnsupportedType, "Can only inherit from a class"},
	}

	for _, tt := range tests {
		_, err := interpretSource(t, tt.input)
		if err == nil {
			t.Errorf("%q: expected a runtime error, got none", tt.input)
			continue
		}
		if err.Kind != tt.kind {
			t.Errorf("%q: expected kind %s, got %s", tt.input, tt.kind, err.Kind)
		}
		if !strings.Contains(err.Error(), tt.contains) {
			t.Errorf("%q: expected message containing %q, got %q", tt.input, tt.contains, err.Error())
		}
	}
}

// TestEvaluator_ZeroDivisionSpan verifies the error points at the
// operator.
func TestEvaluator_ZeroDivisionSpan(t *testing.T) {
	src := `print 1 / 0;`
	_, err := interpretSource(t, src)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	span := err.PrimarySpan()
	if src[span.Lo:span.Hi] != "/" {
		t.Errorf("expected the span to select the operator, got %q", src[span.Lo:span.Hi])
	}
}

// TestEvaluator_ClosureCaptureByReference verifies that closures see
// mutations of captured variables made after the closure was created.
func TestEvaluator_ClosureCaptureByReference(t *testing.T) {
	src := `
	{
		var x = 1;
		fun get() { return x; }
		x = 2;
		print get();
	}`
	out, err := interpretSource(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("expected closure to observe the mutation, got %q", out)
	}
}

// TestEvaluator_SharedClosureFrame verifies that two closures over the
// same frame share state.
func TestEvaluator_SharedClosureFrame(t *testing.T) {
	src := `
	fun pair() {
		var n = 0;
		fun inc() { n = n + 1; return n; }
		fun get() { return n; }
		inc(); inc();
		return get();
	}
	print pair();`
	out, err := interpretSource(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("expected shared frame state, got %q", out)
	}
}

// TestEvaluator_ReplPromotion verifies that in REPL mode a trailing
// expression is auto-printed with the debug rendering (strings quoted).
func TestEvaluator_ReplPromotion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`1 + 1`, "2\n"},
		{`"hi"`, "\"hi\"\n"},
		{`nil`, "nil\n"},
	}

	for _, tt := range tests {
		par := parser.NewParser(tt.input)
		par.ReplMode = true
		stmts, parseErrors := par.Parse()
		if len(parseErrors) > 0 {
			t.Fatalf("unexpected parse errors for %q: %v", tt.input, parseErrors)
		}

		evaluator := eval.NewEvaluator()
		var buf bytes.Buffer
		evaluator.SetWriter(&buf)
		if ok, resolveErrors := resolver.NewResolver(evaluator).Resolve(stmts); !ok {
			t.Fatalf("unexpected resolve errors for %q: %v", tt.input, resolveErrors)
		}
		if err := evaluator.Interpret(stmts); err != nil {
			t.Fatalf("unexpected runtime error for %q: %v", tt.input, err)
		}
		if buf.String() != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.expected, buf.String())
		}
	}
}

// TestEvaluator_Clock verifies the clock native: zero arity, numeric
// result.
func TestEvaluator_Clock(t *testing.T) {
	out, err := interpretSource(t, `print typeof clock(); print clock() <= clock();`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "number\ntrue\n" {
		t.Errorf("expected clock to yield nondecreasing numbers, got %q", out)
	}
}

// TestEvaluator_SessionStatePersists verifies that one evaluator can
// interpret several programs with bindings carrying over, the way the
// REPL drives it.
func TestEvaluator_SessionStatePersists(t *testing.T) {
	evaluator := eval.NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)

	for _, src := range []string{
		`var x = 1;`,
		`fun show2() { print x + 1; }`,
		`show2();`,
	} {
		stmts, parseErrors := parser.NewParser(src).Parse()
		if len(parseErrors) > 0 {
			t.Fatalf("unexpected parse errors for %q: %v", src, parseErrors)
		}
		if ok, resolveErrors := resolver.NewResolver(evaluator).Resolve(stmts); !ok {
			t.Fatalf("unexpected resolve errors for %q: %v", src, resolveErrors)
		}
		if err := evaluator.Interpret(stmts); err != nil {
			t.Fatalf("unexpected runtime error for %q: %v", src, err)
		}
	}

	if buf.String() != "2\n" {
		t.Errorf("expected session state to persist, got %q", buf.String())
	}
}
