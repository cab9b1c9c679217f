package errno

const (
	StatusOK = 10000
)

const (
	InternalError = 50000 + iota
	InvalidParam
)

// upstream provider failures
const (
	ZtkError = 70000 + iota
)

var names = map[int]string{
	StatusOK:      "ok",
	InternalError: "internal_error",
	InvalidParam:  "invalid_param",
	ZtkError:      "ztk_error",
}

// Name returns the symbolic name of an application code, or "unknown".
func Name(code int) string {
	if n, ok := names[code]; ok {
		return n
	}
	return "unknown"
}
