package display

import "errors"

var (
	ErrExists          = errors.New("exists")
	ErrNotExist        = errors.New("not exist")
	ErrNotValid        = errors.New("invalid")
	ErrUnsupportedType = errors.New("unsupported type")
)
