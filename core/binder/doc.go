// Package binder decodes JSON request bodies into Go structs.
//
// The JSON binder enforces the application/json media type, a 1MB size cap,
// strict field matching, and single-document bodies, then scrubs string
// fields of control characters while preserving newlines and tabs:
//
//	var req createDeckRequest
//	if err := binder.JSON()(ctx.Request(), &req); err != nil {
//		return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
//	}
package binder
