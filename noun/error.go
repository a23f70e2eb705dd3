package noun

import "fmt"

// Error is the single stuck-value failure: a reduction step whose
// input matched no rule. The offending sub-datum IS the diagnostic —
// no location, no message, no error kind is attached. Reducers never
// catch, transform or enrich an Error; it propagates unchanged to the
// outermost caller.
type Error struct {
	Stuck Datum
}

// Stuck wraps d as an Error.
func Stuck(d Datum) *Error {
	return &Error{Stuck: d}
}

func (e *Error) Error() string {
	return fmt.Sprintf("stuck: %s", e.Stuck.String())
}
