package seqmap

import "errors"

var (
	ErrKeyNotFound          = errors.New("key not found")
	ErrInvalidSortStrategy  = errors.New("invalid sort strategy")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
