package types

import (
	"fmt"
	"strings"

	"tbk/app/common/consts/biz"
)

type FieldError struct {
	Field  string
	Reason string
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return strings.Join(parts, "; ")
}

// Validate is picked up by httpx.Parse after the body is decoded and the
// options= tag on device_encrypt has been checked.
// item_id and the device fields may both be present; the provider lets item_id win.
func (f *GuessYouLikeForm) Validate() error {
	var errs FieldErrors

	if f.Page < biz.MinPage {
		errs = append(errs, FieldError{"page", fmt.Sprintf("must be >= %d", biz.MinPage)})
	}
	if f.PageSize < biz.MinPageSize || f.PageSize > biz.MaxPageSize {
		errs = append(errs, FieldError{"page_size", fmt.Sprintf("must be in [%d, %d]", biz.MinPageSize, biz.MaxPageSize)})
	}
	if _, ok := biz.ZtkSortKeys[f.Sort]; !ok {
		errs = append(errs, FieldError{"sort", fmt.Sprintf("unsupported sort key %q", f.Sort)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
