package service

import "errors"

// ErrInvalidRange is returned when the requested range is empty or inverted.
// Handlers surface it as a 400.
var ErrInvalidRange = errors.New("end must be after start")
