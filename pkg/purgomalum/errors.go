package purgomalum

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned before any request is sent when an input
// parameter fails local validation.
var ErrInvalidArgument = errors.New("invalid argument")

// ResultError reports a response body that could not be interpreted.
type ResultError struct {
	Content string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("unexpected result from PurgoMalum: %q", e.Content)
}
