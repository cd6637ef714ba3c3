package ads

import "errors"

var (
	ErrAdUnavailable = errors.New("ad is inactive or unknown")
	ErrValidation    = errors.New("validation error")
)
