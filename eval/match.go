package eval

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

// evalMatch tests scrutinee's value against each arm's predicates in
// order (structural equality), running the first arm whose predicate
// list contains a match or whose predicate list is empty (the default
// arm). A match with no matching or default arm evaluates to null.
func (e *Evaluator) evalMatch(n *ast.MatchExpression, env *environment.Environment) object.Value {
	scrutinee := e.Eval(n.Scrutinee, env)
	if object.IsError(scrutinee) {
		return scrutinee
	}

	for _, arm := range n.Arms {
		if len(arm.Predicates) == 0 {
			return e.Eval(arm.Result, environment.Enclose(env))
		}
		matched, errVal := e.armMatches(arm, scrutinee, env)
		if errVal != nil {
			return errVal
		}
		if matched {
			return e.Eval(arm.Result, environment.Enclose(env))
		}
	}
	return &object.Null{}
}

func (e *Evaluator) armMatches(arm ast.MatchArm, scrutinee object.Value, env *environment.Environment) (bool, object.Value) {
	for _, pred := range arm.Predicates {
		val := e.Eval(pred, env)
		if object.IsError(val) {
			return false, val
		}
		if structuralEqualValues(scrutinee, val) {
			return true, nil
		}
	}
	return false, nil
}

// evalTry runs Body; if it produces an Error, the error is bound to
// ErrBinding and the CatchArms are tested against the error's tag
// string. Only string-literal predicates are compared with the tag; any
// other predicate never matches. An uncaught error (no matching
// and no default catch arm) propagates as the try's result.
func (e *Evaluator) evalTry(n *ast.TryExpression, env *environment.Environment) object.Value {
	result := e.evalBlock(n.Body, environment.Enclose(env))
	if !object.IsError(result) {
		return result
	}

	tag := object.ErrorTag(result)
	for _, arm := range n.CatchArms {
		catchEnv := environment.Enclose(env)
		catchEnv.Declare(n.ErrBinding, result)

		if len(arm.Predicates) == 0 {
			return e.Eval(arm.Result, catchEnv)
		}
		matched := false
		for _, pred := range arm.Predicates {
			str, ok := pred.(*ast.StringLiteral)
			if ok && str.Value == tag {
				matched = true
				break
			}
		}
		if matched {
			return e.Eval(arm.Result, catchEnv)
		}
	}
	return result
}
