package response

import (
	"fmt"
	"strconv"

	"tbk/app/common/consts/errno"
	"tbk/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/logx"
)

const internalErrorMsg = "internal error"

// Inner runs fn and turns any returned error or panic into the uniform
// InternalError envelope. Only the failure branch is logged, once, with a
// reference id that is echoed back to the caller.
func Inner(logger logx.Logger, fn func() (*ApiResp, error)) (resp *ApiResp) {
	defer func() {
		if p := recover(); p != nil {
			resp = fail(logger, fmt.Errorf("panic: %v", p))
		}
	}()

	resp, err := fn()
	if err != nil {
		return fail(logger, err)
	}
	if resp == nil {
		return fail(logger, fmt.Errorf("empty response"))
	}

	return resp
}

func fail(logger logx.Logger, err error) *ApiResp {
	ref := strconv.FormatInt(snowflake.Next(), 10)
	logger.Errorw("api inner call failed", logx.Field("err", err.Error()), logx.Field("ref", ref))

	resp := FromErrno(errno.InternalError, internalErrorMsg)
	resp.Ref = ref
	return resp
}
