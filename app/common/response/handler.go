package response

import (
	"context"
	"errors"
	"net/http"

	"tbk/app/common/consts/errno"

	xerrors "github.com/zeromicro/x/errors"
)

// ErrorHandlerCtx is installed with httpx.SetErrorHandlerCtx so that parse
// and validation failures leave through the same envelope as everything else.
func ErrorHandlerCtx(_ context.Context, err error) (int, any) {
	code, msg := errno.InvalidParam, err.Error()

	var cm *xerrors.CodeMsg
	if errors.As(err, &cm) {
		code, msg = cm.Code, cm.Msg
	}
	if msg == "" {
		msg = errno.Name(code)
	}

	return http.StatusOK, FromErrno(code, msg)
}
