package response

import "tbk/app/common/consts/errno"

// ApiResp is the envelope every endpoint of this service answers with.
// The HTTP status is always 200; Success tells callers which branch they got.
type ApiResp struct {
	StatusCode int         `json:"code"`
	StatusMsg  string      `json:"msg"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Ref        string      `json:"ref,omitempty"`
}

func FromData(data interface{}) *ApiResp {
	return &ApiResp{
		StatusCode: errno.StatusOK,
		StatusMsg:  errno.Name(errno.StatusOK),
		Success:    true,
		Data:       data,
	}
}

// FromErrno keeps msg as given, an empty detail stays empty.
func FromErrno(code int, msg string) *ApiResp {
	return &ApiResp{
		StatusCode: code,
		StatusMsg:  msg,
	}
}
