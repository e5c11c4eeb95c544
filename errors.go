package gridpaper

import "errors"

var (
	// ErrConfig reports an invalid paper size, margin, spacing or line width.
	ErrConfig = errors.New("configuration error")
	// ErrIO reports a failure to create or write the output.
	ErrIO = errors.New("i/o error")
)
