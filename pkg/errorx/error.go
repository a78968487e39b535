package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// Unknown is returned to the client whenever an error cannot be expressed as
// a well-known Error. The original cause must be logged before returning it.
var Unknown = Error{Code: Internal, Message: "Request failed"}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
