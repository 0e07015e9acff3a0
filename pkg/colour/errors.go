package colour

import "errors"

// ErrInvalidArgument is returned when a band index, palette length or colour
// record is outside the range the palette functions accept.
var ErrInvalidArgument = errors.New("invalid argument")
