/*
File    : pluto/ast/dump.go

Dump renders a Node tree as an indented text listing, for the `--tree`
CLI flag. Grounded on the teacher's PrintingVisitor (same indent-and-write
shape), but implemented as a plain recursive type-switch over Node rather
than a Visit-per-type interface, consistent with ast.go's dispatch choice.
*/
package ast

import (
	"fmt"
	"strings"
)

const dumpIndentSize = 2

// Dump renders node as an indented tree, one line per node.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dumpIndent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(" ", depth*dumpIndentSize))
}

func dump(b *strings.Builder, node Node, depth int) {
	if node == nil {
		dumpIndent(b, depth)
		b.WriteString("<nil>\n")
		return
	}

	switch n := node.(type) {
	case *Program:
		dumpIndent(b, depth)
		b.WriteString("Program\n")
		for _, s := range n.Statements {
			dump(b, s, depth+1)
		}

	case *ExpressionStatement:
		dumpIndent(b, depth)
		b.WriteString("ExpressionStatement\n")
		dump(b, n.Expr, depth+1)

	case *BlockStatement:
		dumpIndent(b, depth)
		b.WriteString("Block\n")
		for _, s := range n.Statements {
			dump(b, s, depth+1)
		}

	case *ReturnStatement:
		dumpIndent(b, depth)
		b.WriteString("Return\n")
		if n.Value != nil {
			dump(b, n.Value, depth+1)
		}

	case *NextStatement:
		dumpIndent(b, depth)
		b.WriteString("Next\n")

	case *BreakStatement:
		dumpIndent(b, depth)
		b.WriteString("Break\n")

	case *NumberLiteral:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Number(%v)\n", n.Value)

	case *StringLiteral:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "String(%q)\n", n.Value)

	case *CharLiteral:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Char(%q)\n", n.Value)

	case *BooleanLiteral:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Boolean(%v)\n", n.Value)

	case *NullLiteral:
		dumpIndent(b, depth)
		b.WriteString("Null\n")

	case *ArrayLiteral:
		dumpIndent(b, depth)
		b.WriteString("Array\n")
		for _, e := range n.Elements {
			dump(b, e, depth+1)
		}

	case *TupleLiteral:
		dumpIndent(b, depth)
		b.WriteString("Tuple\n")
		for _, e := range n.Elements {
			dump(b, e, depth+1)
		}

	case *MapLiteral:
		dumpIndent(b, depth)
		b.WriteString("Map\n")
		for _, pair := range n.Pairs {
			dump(b, pair.Key, depth+1)
			dump(b, pair.Value, depth+1)
		}

	case *BlockLiteral:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "BlockLiteral(%s)\n", strings.Join(n.Params, ", "))
		dump(b, n.Body, depth+1)

	case *Identifier:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Identifier(%s)\n", n.Name)

	case *PrefixExpression:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Prefix(%s)\n", n.Operator)
		dump(b, n.Right, depth+1)

	case *InfixExpression:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Infix(%s)\n", n.Operator)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)

	case *DotExpression:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Dot(.%s)\n", n.Name)
		dump(b, n.Left, depth+1)

	case *AssignExpression:
		dumpIndent(b, depth)
		b.WriteString("Assign\n")
		dump(b, n.Target, depth+1)
		dump(b, n.Value, depth+1)

	case *DeclareExpression:
		dumpIndent(b, depth)
		b.WriteString("Declare\n")
		dump(b, n.Target, depth+1)
		dump(b, n.Value, depth+1)

	case *IfExpression:
		dumpIndent(b, depth)
		b.WriteString("If\n")
		dump(b, n.Condition, depth+1)
		dump(b, n.Then, depth+1)
		if n.Else != nil {
			dump(b, n.Else, depth+1)
		}

	case *WhileExpression:
		dumpIndent(b, depth)
		b.WriteString("While\n")
		dump(b, n.Condition, depth+1)
		dump(b, n.Body, depth+1)

	case *ForExpression:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "For(%s)\n", n.Var)
		dump(b, n.Collection, depth+1)
		dump(b, n.Body, depth+1)

	case *FunctionCall:
		dumpIndent(b, depth)
		b.WriteString("Call " + dumpCallPattern(n.Pattern) + "\n")
		for _, item := range n.Pattern {
			if item.Kind == PatternHole {
				dump(b, item.Argument, depth+1)
			}
		}

	case *MethodCall:
		dumpIndent(b, depth)
		b.WriteString("MethodCall " + dumpCallPattern(n.Pattern) + "\n")
		dump(b, n.Instance, depth+1)
		for _, item := range n.Pattern {
			if item.Kind == PatternHole {
				dump(b, item.Argument, depth+1)
			}
		}

	case *FunctionDefinition:
		dumpIndent(b, depth)
		b.WriteString("FunctionDefinition " + dumpDefPattern(n.Pattern) + "\n")
		dump(b, n.Body, depth+1)

	case *InitDefinition:
		dumpIndent(b, depth)
		b.WriteString("Init " + dumpDefPattern(n.Pattern) + "\n")
		dump(b, n.Body, depth+1)

	case *ClassStatement:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Class(%s)\n", n.Name)
		if n.Parent != nil {
			dump(b, n.Parent, depth+1)
		}
		for _, m := range n.Methods {
			dump(b, m, depth+1)
		}

	case *MatchExpression:
		dumpIndent(b, depth)
		b.WriteString("Match\n")
		dump(b, n.Scrutinee, depth+1)
		for _, arm := range n.Arms {
			dumpIndent(b, depth+1)
			b.WriteString("Arm\n")
			for _, p := range arm.Predicates {
				dump(b, p, depth+2)
			}
			dump(b, arm.Result, depth+2)
		}

	case *TryExpression:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "Try(%s)\n", n.ErrBinding)
		dump(b, n.Body, depth+1)
		for _, arm := range n.CatchArms {
			dumpIndent(b, depth+1)
			b.WriteString("Catch\n")
			for _, p := range arm.Predicates {
				dump(b, p, depth+2)
			}
			dump(b, arm.Result, depth+2)
		}

	default:
		dumpIndent(b, depth)
		fmt.Fprintf(b, "%T\n", n)
	}
}

func dumpCallPattern(pattern []CallPatternItem) string {
	var parts []string
	for _, item := range pattern {
		if item.Kind == PatternKeyword {
			parts = append(parts, item.Keyword)
		} else {
			parts = append(parts, "()")
		}
	}
	return strings.Join(parts, " ")
}

func dumpDefPattern(pattern []DefPatternItem) string {
	var parts []string
	for _, item := range pattern {
		if item.Kind == PatternParam {
			parts = append(parts, "$"+item.Text)
		} else {
			parts = append(parts, item.Text)
		}
	}
	return strings.Join(parts, " ")
}
