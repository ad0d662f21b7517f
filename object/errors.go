package object

// ErrorClassName is the reserved class name for the prelude's Error
// class. An Error is an ordinary Instance of this class carrying `tag`
// and `msg` fields; there is no separate Error Go type. What makes it
// special is purely behavioral: IsError recognizes it and every
// composite evaluation context short-circuits on it, exactly like a
// ReturnValue does for `return`.
const ErrorClassName = "Error"

// ErrorClass is the built-in Error class registered into every root
// environment (see eval.New), so `Error` is resolvable as
// a class value even before lib/prelude.pluto runs.
var ErrorClass = &Class{Name: ErrorClassName}

// NewError builds an Error instance with the given tag and message.
func NewError(tag, msg string) *Instance {
	inst := NewInstance(ErrorClass)
	inst.Fields["tag"] = &String{Value: tag}
	inst.Fields["msg"] = &String{Value: msg}
	return inst
}

// IsError reports whether v is an Error instance — the single predicate
// every statement-sequence, operator, call, and loop body consults to
// decide whether to short-circuit instead of continuing evaluation.
func IsError(v Value) bool {
	inst, ok := v.(*Instance)
	if !ok {
		return false
	}
	return isErrorClass(inst.Class)
}

func isErrorClass(c *Class) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls.Name == ErrorClassName {
			return true
		}
	}
	return false
}

// ErrorTag returns an Error instance's tag field, or "" if v is not an
// Error instance.
func ErrorTag(v Value) string {
	inst, ok := v.(*Instance)
	if !ok {
		return ""
	}
	tag, ok := inst.Fields["tag"].(*String)
	if !ok {
		return ""
	}
	return tag.Value
}

// ErrorMessage returns an Error instance's msg field, or "" if v is not
// an Error instance.
func ErrorMessage(v Value) string {
	inst, ok := v.(*Instance)
	if !ok {
		return ""
	}
	msg, ok := inst.Fields["msg"].(*String)
	if !ok {
		return ""
	}
	return msg.Value
}
