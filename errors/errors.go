package errors

import "fmt"

var (
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
)
