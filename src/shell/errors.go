package shell

import "fmt"

type errorType int

const (
	ErrNotError errorType = iota
	ErrUnknownCommand
	ErrMissingArgument
	ErrArgumentCount
	ErrInvalidKey
	ErrInvalidTree
)

var errMap = map[errorType]string{
	ErrNotError:        "not a valid error",
	ErrUnknownCommand:  "unknown command",
	ErrMissingArgument: "missing key argument",
	ErrArgumentCount:   "wrong number of arguments",
	ErrInvalidKey:      "key is not an integer",
	ErrInvalidTree:     "tree failed validation",
}

func (e errorType) Error() string {
	return errMap[e]
}

func (e errorType) Is(target error) bool {
	t, ok := target.(errorType)
	if !ok {
		return false
	}
	return t == e
}

func newShellError(kind errorType, subject string) error {
	return fmt.Errorf("%w: %q", kind, subject)
}
