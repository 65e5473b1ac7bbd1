package ops

import "github.com/sandrolain/rulelogic/pkg/value"

// Datetime implements `datetime`: parses an ISO-8601 string into a
// DateTime value.
func Datetime(args []value.Value) (value.Value, *value.Error) {
	s, err := oneString(args, "datetime")
	if err != nil {
		return value.Null, err
	}
	return value.ParseDateTime(s)
}

// Timestamp implements `timestamp`: parses a `<d>d:<h>h:<m>m:<s>s`-style
// literal into a Duration value.
func Timestamp(args []value.Value) (value.Value, *value.Error) {
	s, err := oneString(args, "timestamp")
	if err != nil {
		return value.Null, err
	}
	return value.ParseDuration(s)
}
