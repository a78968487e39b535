package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/timecraft-lab/backend/pkg/errorx"
	"github.com/timecraft-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithSlots(ctx)

		func() {
			for _, m := range router.befores {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}
				ctx = newCtx
			}

			var req Request
			if err := bindRequest(r, method, &req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
				return
			}

			// Every request runs against a single transaction, committed only
			// when the handler succeeds.
			tx := xcontext.DB(ctx).Begin()
			if tx.Error != nil {
				xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", tx.Error)
				xcontext.SetError(ctx, errorx.Unknown)
				return
			}

			resp, err := handler(xcontext.WithDB(ctx, tx), &req)
			if err != nil {
				tx.Rollback()
				xcontext.SetError(ctx, err)
				return
			}

			if err := tx.Commit().Error; err != nil {
				xcontext.Logger(ctx).Errorf("Cannot commit transaction: %v", err)
				xcontext.SetError(ctx, errorx.Unknown)
				return
			}

			if resp != nil {
				xcontext.SetResponse(ctx, resp)
			}

			for _, m := range router.afters {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}
				ctx = newCtx
			}
		}()

		writeResponse(ctx, w)

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

func writeResponse(ctx context.Context, w http.ResponseWriter) {
	if err := xcontext.GetError(ctx); err != nil {
		var errx errorx.Error
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		if werr := WriteJson(w, errorx.StatusCode(errx.Code), newErrorResponse(errx)); werr != nil {
			xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", werr)
		}

		return
	}

	resp := xcontext.GetResponse(ctx)
	if err := WriteJson(w, statusOf(resp), newResponse(resp)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
