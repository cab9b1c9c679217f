package biz

const (
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 100
)

// 折淘客排序方式
var ZtkSortKeys = map[string]struct{}{
	"new":                {},
	"total_sales_asc":    {},
	"total_sales_des":    {},
	"sale_num_asc":       {},
	"sale_num_des":       {},
	"tk_rate_asc":        {},
	"tk_rate_des":        {},
	"tk_total_sales_asc": {},
	"tk_total_sales_des": {},
	"price_asc":          {},
	"price_des":          {},
}

const ZtkSuccessStatus = 200
