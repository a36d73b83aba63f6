package sdl

import "reflect"

// A MarshalerError represents an error from calling a MarshalSDL method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "sdl: error calling MarshalSDL for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
