// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package ztk

import (
	"context"

	"tbk/app/api/ztk/internal/logic/helper"
	"tbk/app/api/ztk/internal/svc"
	"tbk/app/api/ztk/internal/types"
	"tbk/app/common/consts/biz"
	"tbk/app/common/consts/errno"
	"tbk/app/common/response"

	"github.com/zeromicro/go-zero/core/logx"
)

type GuessYouLikeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGuessYouLikeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GuessYouLikeLogic {
	return &GuessYouLikeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// 猜你喜欢
func (l *GuessYouLikeLogic) GuessYouLike(req *types.GuessYouLikeForm) (resp *response.ApiResp, err error) {
	resp = response.Inner(l.Logger, func() (*response.ApiResp, error) {
		args := helper.ToGuessYouLikeArgs(req)

		res, err := l.svcCtx.Ztk.GuessYouLike(l.ctx, args)
		if err != nil {
			return nil, err
		}

		if res.Status == biz.ZtkSuccessStatus {
			return response.FromData(res.Items), nil
		}
		return response.FromErrno(errno.ZtkError, res.Detail()), nil
	})

	return
}
