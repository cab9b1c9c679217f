// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package ztk

import (
	"net/http"

	"tbk/app/api/ztk/internal/logic/ztk"
	"tbk/app/api/ztk/internal/svc"
	"tbk/app/api/ztk/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 猜你喜欢
func GuessYouLikeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GuessYouLikeForm
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := ztk.NewGuessYouLikeLogic(r.Context(), svcCtx)
		resp, err := l.GuessYouLike(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
