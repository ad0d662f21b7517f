package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutolang/pluto/lib"
	"github.com/plutolang/pluto/object"
	"github.com/plutolang/pluto/parser"
)

func run(t *testing.T, src string) (object.Value, string) {
	t.Helper()
	p := parser.New(src)
	program := p.Parse()
	require.Empty(t, p.Errors(), "parse errors for %q: %v", src, p.Errors())

	var out bytes.Buffer
	ev := New()
	ev.SetParser(p)
	ev.SetWriter(&out)
	result := ev.Run(program)
	return result, out.String()
}

func TestEval_Arithmetic(t *testing.T) {
	result, _ := run(t, `1 + 2 * 3`)
	num, ok := result.(*object.Number)
	require.True(t, ok)
	assert.Equal(t, 7.0, num.Value)
}

func TestEval_FloorDivAndMod(t *testing.T) {
	result, _ := run(t, `7 // 2`)
	assert.Equal(t, 3.0, result.(*object.Number).Value)

	result, _ = run(t, `-7 % 2`)
	assert.Equal(t, -1.0, result.(*object.Number).Value)
}

func TestEval_StringConcatAndEquality(t *testing.T) {
	result, _ := run(t, `"foo" + "bar"`)
	assert.Equal(t, "foobar", result.(*object.String).Value)

	result, _ = run(t, `[1, 2] == [1, 2]`)
	assert.Equal(t, true, result.(*object.Boolean).Value)
}

func TestEval_DeclareAssignDualWrite(t *testing.T) {
	// Assign from a nested block must update the outer scope's binding
	// while also leaving a same-named binding visible in the block.
	result, _ := run(t, `
		x := 1
		if true {
			x = 2
		}
		x
	`)
	assert.Equal(t, 2.0, result.(*object.Number).Value)
}

func TestEval_WhileBreakAndNext(t *testing.T) {
	result, _ := run(t, `
		i := 0
		total := 0
		while i < 5 {
			i = i + 1
			if i == 3 {
				next
			}
			if i == 5 {
				break
			}
			total = total + i
		}
		total
	`)
	assert.Equal(t, 7.0, result.(*object.Number).Value)
}

func TestEval_ForOverArray(t *testing.T) {
	result, _ := run(t, `
		total := 0
		for x in [1, 2, 3] {
			total = total + x
		}
		total
	`)
	assert.Equal(t, 6.0, result.(*object.Number).Value)
}

func TestEval_FunctionDefinitionAndCall(t *testing.T) {
	result, _ := run(t, `
		def square $n {
			return n * n
		}
		\square (5)
	`)
	assert.Equal(t, 25.0, result.(*object.Number).Value)
}

func TestEval_RecursiveFunction(t *testing.T) {
	result, _ := run(t, `
		def fact $n {
			if n <= 1 {
				return 1
			}
			return n * \fact ((n - 1))
		}
		\fact (5)
	`)
	assert.Equal(t, 120.0, result.(*object.Number).Value)
}

func TestEval_ClassInitAndMethod(t *testing.T) {
	result, _ := run(t, `
		class Counter {
			init starting_at $n {
				self.count = n
			}
			def bump {
				self.count = self.count + 1
				return self.count
			}
		}
		c := \starting_at (10);
		c.\bump;
		c.\bump
	`)
	assert.Equal(t, 12.0, result.(*object.Number).Value)
}

func TestEval_ClassInheritance(t *testing.T) {
	result, _ := run(t, `
		class Animal {
			init named $n {
				self.name = n
			}
			def speak {
				return "..."
			}
		}
		class Dog extends Animal {
			init dog_named $n {
				self.name = n
			}
			def speak {
				return "woof"
			}
		}
		d := \dog_named ("Rex");
		d.\speak
	`)
	assert.Equal(t, "woof", result.(*object.String).Value)
}

func TestEval_OperatorOverload(t *testing.T) {
	result, _ := run(t, `
		class Vec {
			init at $x and $y {
				self.x = x
				self.y = y
			}
			def __plus $other {
				return \at (self.x + other.x) and (self.y + other.y)
			}
		}
		a := \at (1) and (2);
		b := \at (3) and (4);
		sum := a + b
		sum.x
	`)
	assert.Equal(t, 4.0, result.(*object.Number).Value)
}

func TestEval_MatchExpression(t *testing.T) {
	result, _ := run(t, `
		match 2 {
			1 => "one";
			2, 3 => "two-or-three";
			=> "other";
		}
	`)
	assert.Equal(t, "two-or-three", result.(*object.String).Value)
}

func TestEval_TryCatchBindsErrorAndMatchesTag(t *testing.T) {
	// `\with (tag) message (msg)` is the prelude Error class's constructor.
	result, _ := run(t, lib.Prelude+`
		def boom {
			return \with ("Boom") message ("bad")
		}
		try {
			\boom
		} catch $err {
			"Boom" => err.msg;
			=> "uncaught";
		}
	`)
	assert.Equal(t, "bad", result.(*object.String).Value)
}

func TestEval_MapRunsBlockOncePerElement(t *testing.T) {
	// A block value passed to map runs once per element, in a scope
	// enclosing the scope map was called from.
	result, _ := run(t, `
		outer := 99
		b := { $x -> return x }
		\map (b) over ([1, 2, 3])
	`)
	arr, ok := result.(*object.Array)
	require.True(t, ok)
	assert.Len(t, arr.Elems, 3)
}

func TestEval_PrintWritesToEvaluatorWriter(t *testing.T) {
	_, out := run(t, `\print ("hello")`)
	assert.Equal(t, "hello\n", out)
}
