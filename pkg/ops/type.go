package ops

import "github.com/sandrolain/rulelogic/pkg/value"

// Type implements `type`: returns the operand's type name as a String.
func Type(args []value.Value) (value.Value, *value.Error) {
	if len(args) != 1 {
		return value.Null, value.NewError(value.InvalidArguments, "\"type\" requires exactly one operand")
	}
	return value.String(args[0].TypeName()), nil
}
