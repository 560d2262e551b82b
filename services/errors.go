package services

import "errors"

// Business failures all surface to the client as 400 with their message.
// Not-found deliberately shares the 400 status so a caller cannot probe
// whether another user's entity exists.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// InUseError blocks a categoria delete while transactions still reference it.
type InUseError struct {
	Msg string
}

func (e *InUseError) Error() string { return e.Msg }

func IsBusinessError(err error) bool {
	var ve *ValidationError
	var nf *NotFoundError
	var iu *InUseError
	return errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &iu)
}
