package runtime

import "fmt"

// RuntimeError is the single error kind raised while evaluating a program.
// Token points at the operator or name that triggered it.
type RuntimeError struct {
	Token   Token
	Message string
}

func NewRuntimeError(token Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Line reports the source line of the offending token.
func (e *RuntimeError) Line() int {
	return e.Token.Line
}

func undefinedVariable(name Token) *RuntimeError {
	return NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}
