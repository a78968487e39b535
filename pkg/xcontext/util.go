package xcontext

import "context"

type (
	userIDKey   struct{}
	responseKey struct{}
	errorKey    struct{}
)

// Response and error slots are pointer boxes installed once per request, so
// values written by the handler wrapper remain visible to after-middlewares
// and closers that hold an earlier context.
type slot struct {
	value any
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the verified user id of this request, or an empty
// string before authentication has run.
func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func WithSlots(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, responseKey{}, &slot{})
	return context.WithValue(ctx, errorKey{}, &slot{})
}

func SetResponse(ctx context.Context, resp any) {
	if s, ok := ctx.Value(responseKey{}).(*slot); ok {
		s.value = resp
	}
}

func GetResponse(ctx context.Context) any {
	if s, ok := ctx.Value(responseKey{}).(*slot); ok {
		return s.value
	}

	return nil
}

func SetError(ctx context.Context, err error) {
	if s, ok := ctx.Value(errorKey{}).(*slot); ok {
		s.value = err
	}
}

func GetError(ctx context.Context) error {
	s, ok := ctx.Value(errorKey{}).(*slot)
	if !ok || s.value == nil {
		return nil
	}

	return s.value.(error)
}
