// Package config holds process-wide flags that shape how the rest of the
// module renders output.
package config

// Version is the current engine version.
var Version = "0.1.0"

// IsTestMode normalizes generated type-variable names in types.Var's
// String() output ('1, '2, ... -> '?) so golden test expectations don't have
// to track the fresh-variable counter. Tests that care about actual names
// should flip this off for the duration of the assertion.
var IsTestMode = false

// PreludeConfigPath holds a path to a prelude manifest (see
// internal/preludecfg). Nothing in this module reads it: cmd/infer takes its
// manifest path from the -prelude flag.
var PreludeConfigPath = ""

// ListTypeName is the name of the built-in unary list type constructor.
const ListTypeName = "List"

// IntTypeName and BoolTypeName name the two built-in nullary type constructors.
const (
	IntTypeName  = "int"
	BoolTypeName = "bool"
)
