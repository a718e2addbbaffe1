package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange     = Error("value out of display range")
	ErrInvalidAddress = Error("invalid storage address")
	ErrPinNotFound    = Error("pin not found")
	ErrScript         = Error("invalid input script")
)
