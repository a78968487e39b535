package errorx

import "net/http"

type Code int

const (
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Unauthenticated Code = 100004
	AlreadyExists   Code = 100005
	Internal        Code = 100006
	Unavailable     Code = 100007
)

// StatusCode maps an error code to the HTTP status written alongside the
// response envelope. Codes without an explicit mapping are treated as
// internal failures.
func StatusCode(code Code) int {
	switch code {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
