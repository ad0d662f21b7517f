package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plutolang/pluto/ast"
)

func parseNoErrors(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	program := p.Parse()
	assert.Empty(t, p.Errors(), "unexpected parse errors for %q: %v", src, p.Errors())
	return program
}

func TestParse_NumberExpression(t *testing.T) {
	program := parseNoErrors(t, `42`)
	assert.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	num := stmt.Expr.(*ast.NumberLiteral)
	assert.Equal(t, 42.0, num.Value)
}

func TestParse_InfixPrecedence(t *testing.T) {
	program := parseNoErrors(t, `1 + 2 * 3`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	infix := stmt.Expr.(*ast.InfixExpression)
	assert.Equal(t, "+", infix.Operator)
	right := infix.Right.(*ast.InfixExpression)
	assert.Equal(t, "*", right.Operator)
}

func TestParse_AssignAndDeclare(t *testing.T) {
	program := parseNoErrors(t, `x := 1; x = 2`)
	assert.Len(t, program.Statements, 2)
	decl := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.DeclareExpression)
	assert.Equal(t, "x", decl.Target.(*ast.Identifier).Name)
	assign := program.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.AssignExpression)
	assert.Equal(t, "x", assign.Target.(*ast.Identifier).Name)
}

func TestParse_IfElifElse(t *testing.T) {
	program := parseNoErrors(t, `if a { 1 } elif b { 2 } else { 3 }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExpr := stmt.Expr.(*ast.IfExpression)
	assert.NotNil(t, ifExpr.Then)
	assert.NotNil(t, ifExpr.Else)
	nested := ifExpr.Else.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.IfExpression)
	assert.NotNil(t, nested.Else)
}

func TestParse_WhileAndFor(t *testing.T) {
	program := parseNoErrors(t, `while x { break } for y in z { next }`)
	assert.Len(t, program.Statements, 2)
	while := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.WhileExpression)
	assert.Len(t, while.Body.Statements, 1)
	forExpr := program.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.ForExpression)
	assert.Equal(t, "y", forExpr.Var)
}

func TestParse_FunctionCallPattern(t *testing.T) {
	program := parseNoErrors(t, `\map (list) over (xs)`)
	call := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.FunctionCall)
	assert.Len(t, call.Pattern, 4)
	assert.Equal(t, ast.PatternKeyword, call.Pattern[0].Kind)
	assert.Equal(t, "map", call.Pattern[0].Keyword)
	assert.Equal(t, ast.PatternHole, call.Pattern[1].Kind)
	assert.Equal(t, ast.PatternKeyword, call.Pattern[2].Kind)
	assert.Equal(t, "over", call.Pattern[2].Keyword)
}

func TestParse_FunctionDefinition(t *testing.T) {
	program := parseNoErrors(t, `def max_of $a and $b { return a }`)
	def := program.Statements[0].(*ast.FunctionDefinition)
	assert.Len(t, def.Pattern, 4)
	assert.Equal(t, ast.PatternKeyword, def.Pattern[0].Kind)
	assert.Equal(t, "max_of", def.Pattern[0].Text)
	assert.Equal(t, ast.PatternParam, def.Pattern[1].Kind)
	assert.Equal(t, "a", def.Pattern[1].Text)
}

func TestParse_ClassWithInitAndMethod(t *testing.T) {
	program := parseNoErrors(t, `class Box extends Base {
		init with $value {
			self.value = value
		}
		def unwrap {
			return self.value
		}
	}`)
	class := program.Statements[0].(*ast.ClassStatement)
	assert.Equal(t, "Box", class.Name)
	assert.NotNil(t, class.Parent)
	assert.Len(t, class.Methods, 2)
	_, isInit := class.Methods[0].(*ast.InitDefinition)
	assert.True(t, isInit)
	_, isDef := class.Methods[1].(*ast.FunctionDefinition)
	assert.True(t, isDef)
}

func TestParse_MethodCallPattern(t *testing.T) {
	program := parseNoErrors(t, `box.\unwrap`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.MethodCall)
	assert.Len(t, call.Pattern, 1)
	assert.Equal(t, "unwrap", call.Pattern[0].Keyword)
}

func TestParse_MatchExpression(t *testing.T) {
	program := parseNoErrors(t, `match x {
		1, 2 => "small";
		=> "other";
	}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	m := stmt.Expr.(*ast.MatchExpression)
	assert.Len(t, m.Arms, 2)
	assert.Len(t, m.Arms[0].Predicates, 2)
	assert.Empty(t, m.Arms[1].Predicates)
}

func TestParse_TryCatch(t *testing.T) {
	program := parseNoErrors(t, `try {
		1
	} catch $err {
		"Boom" => 2;
		=> 3;
	}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	tryExpr := stmt.Expr.(*ast.TryExpression)
	assert.Equal(t, "err", tryExpr.ErrBinding)
	assert.Len(t, tryExpr.CatchArms, 2)
}

func TestParse_CollectionLiterals(t *testing.T) {
	program := parseNoErrors(t, `[1, 2, 3]; (1, 2); [:]; ["a": 1, "b": 2]`)
	assert.Len(t, program.Statements, 4)
	arr := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.ArrayLiteral)
	assert.Len(t, arr.Elements, 3)
	tup := program.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.TupleLiteral)
	assert.Len(t, tup.Elements, 2)
	emptyMap := program.Statements[2].(*ast.ExpressionStatement).Expr.(*ast.MapLiteral)
	assert.Empty(t, emptyMap.Pairs)
	m := program.Statements[3].(*ast.ExpressionStatement).Expr.(*ast.MapLiteral)
	assert.Len(t, m.Pairs, 2)
}

func TestParse_BlockLiteral(t *testing.T) {
	program := parseNoErrors(t, `{ $x $y -> return x }`)
	block := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.BlockLiteral)
	assert.Equal(t, []string{"x", "y"}, block.Params)
	assert.Len(t, block.Body.Statements, 1)
}

func TestParse_NotKeywordIsPrefixBang(t *testing.T) {
	program := parseNoErrors(t, `not true`)
	prefix := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.PrefixExpression)
	assert.Equal(t, "!", prefix.Operator)
}

func TestParse_TrailingCommaInArray(t *testing.T) {
	program := parseNoErrors(t, `[1, 2,]`)
	arr := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.ArrayLiteral)
	assert.Len(t, arr.Elements, 2)
}

func TestParse_ReportsSyntaxError(t *testing.T) {
	p := New(`if x { `)
	p.Parse()
	assert.NotEmpty(t, p.Errors())
}
