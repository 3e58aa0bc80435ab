package control

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a block does not support the requested
// operation (e.g. reading data from a null block).
var ErrInvalidOperation = Error.New("invalid operation")
