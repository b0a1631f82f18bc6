package api

import "fmt"

// ValidationError is a local precondition failure. It is raised before
// any network call and never reaches a collaborator.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// TransportError indicates a collaborator was unreachable or answered
// with a failure status. Status is 0 when the request never got a
// response.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("collaborator returned HTTP %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("collaborator unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates a collaborator responded with a malformed or
// unexpected payload shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed collaborator response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
