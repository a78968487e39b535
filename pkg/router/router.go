package router

import (
	"context"
	"net/http"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may derive a new context (for
// example to attach the verified user id); returning an error aborts the
// request with the error envelope.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written, regardless of the
// request outcome. Closers observe the result through xcontext.GetResponse
// and xcontext.GetError.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx context.Context
	mux *http.ServeMux

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

// New creates a root router. The given context carries the process-wide
// database, configs, and logger, and becomes the base of every request
// context.
func New(ctx context.Context) *Router {
	return &Router{ctx: ctx, mux: http.NewServeMux()}
}

// Branch returns a router sharing the same mux but with its own middleware
// chain, so endpoint groups can differ in authentication requirements.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		mux:     r.mux,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc("GET "+pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc("POST "+pattern, wrapHandler(r, http.MethodPost, handler))
}

func PATCH[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc("PATCH "+pattern, wrapHandler(r, http.MethodPatch, handler))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc("DELETE "+pattern, wrapHandler(r, http.MethodDelete, handler))
}
