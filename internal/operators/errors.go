package operators

import "errors"

// ErrNonPositiveDimension indicates an operator was requested with a
// dimension smaller than one.
var ErrNonPositiveDimension = errors.New("operators: dimension must be positive")
