package conversion

import "errors"

var (
	ErrNotFinite       = errors.New("value is not finite")
	ErrNotIntegral     = errors.New("value has a fractional part")
	ErrOutOfRange      = errors.New("value is out of range")
	ErrUnsupportedKind = errors.New("unsupported kind")
	ErrInvalidLiteral  = errors.New("invalid numeric literal")
)
