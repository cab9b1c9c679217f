// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"tbk/app/common/thirdparty/ztk"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

type Config struct {
	rest.RestConf

	Consul consul.Conf `json:",optional"`

	Ztk ztk.Conf

	LogConf logx.LogConf

	// node id for failure reference ids, derived from the hostname when unset
	SnowflakeNode int64 `json:",default=-1"`
}
