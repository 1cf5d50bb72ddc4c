package form3

import (
	"fmt"
	"runtime/debug"
)

// shapeErr is returned when a shape constructor panics
// due to invalid parameters.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Stack returns the stack trace captured when the shape panicked.
func (s *shapeErr) Stack() string { return s.stack }

// recoverShape turns a panic in a must3 constructor into an error.
// It must be deferred directly.
func recoverShape(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}
