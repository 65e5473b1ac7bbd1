package value

import "fmt"

// ErrorCode identifies one of the structured failure kinds an evaluation
// can raise, including the stack-overflow kind that makes depth-limit
// failures distinguishable inside a `try`.
type ErrorCode string

const (
	// InvalidArguments: operator received wrong arity/type.
	InvalidArguments ErrorCode = "Invalid Arguments"
	// NaN: a numeric operation could not produce a number.
	NaN ErrorCode = "NaN"
	// UnknownOperator: evaluation reached a custom-operator node whose name
	// has no registered implementation.
	UnknownOperator ErrorCode = "Unknown Operator"
	// User: the payload came from an explicit `throw`.
	User ErrorCode = "User"
	// StackOverflow: recursion/iteration exceeded the configured max depth.
	StackOverflow ErrorCode = "Stack Overflow"
)

// Error is the structured failure type propagated by evaluation. It carries
// a Payload Value so that a surrounding `try` can inspect `val("type")` and
// `val([])` against the same shape an explicit `throw` produces.
type Error struct {
	Code    ErrorCode
	Message string
	// Payload is the value exposed to `try` as the ambient scope data.
	// For InvalidArguments/NaN/UnknownOperator/StackOverflow it is an
	// object `{"type": Code}`; for User it is whatever `throw` was given.
	Payload Value
}

// NewError builds a structured Error whose Payload is `{"type": code}`.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Payload: Object([]Pair{{Key: "type", Val: String(string(code))}}),
	}
}

// NewUserError builds a `throw`-raised Error. payload is the operand of
// throw: a string becomes the `type` field, any other value is the payload
// verbatim.
func NewUserError(payload Value) *Error {
	p := payload
	if payload.Kind() == KindString {
		p = Object([]Pair{{Key: "type", Val: payload}})
	}
	return &Error{Code: User, Message: "throw", Payload: p}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
