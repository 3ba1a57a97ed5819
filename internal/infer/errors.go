package infer

import "fmt"

// UndefinedNameError reports a Var node whose name has no binding in the
// current environment (spec.md §7).
type UndefinedNameError struct {
	Name string
}

func (e *UndefinedNameError) Error() string {
	return fmt.Sprintf("%s is undefined", e.Name)
}

// TypeError reports a unification failure: an occurs-check violation or a
// mismatch between two incompatible types (spec.md §7). The message always
// names both offending types in their rendered form, prefixed the way
// infer.rs's Error::TypeError variant renders under Display.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return fmt.Sprintf("Type error: %s", e.Message) }
