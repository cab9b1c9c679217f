// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"tbk/app/api/ztk/internal/config"
	"tbk/app/common/snowflake"
	"tbk/app/common/thirdparty/ztk"

	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config config.Config
	Ztk    ztk.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	if c.SnowflakeNode >= 0 {
		logx.Must(snowflake.SetNodeID(c.SnowflakeNode))
	}

	return &ServiceContext{
		Config: c,
		Ztk:    ztk.MustNewClient(c.Ztk),
	}
}
