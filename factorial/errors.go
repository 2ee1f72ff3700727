package factorial

// Predefined errors

import "github.com/pkg/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument: factorial is undefined for negative n")
	ErrOverflow        = errors.New("overflow: result does not fit in int32")
	ErrUnknownPolicy   = errors.New("unknown overflow policy")
	ErrUnknownVariant  = errors.New("unknown variant")
)
