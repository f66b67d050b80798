package errors

import "fmt"

var (
	ErrInvalidConfig  = fmt.Errorf("invalid configuration")
	ErrPresenterWrite = fmt.Errorf("presenter write failed")
)
