package helper

import (
	"tbk/app/api/ztk/internal/types"
	"tbk/app/common/thirdparty/ztk"
)

func ToGuessYouLikeArgs(src *types.GuessYouLikeForm) *ztk.GuessYouLikeArgs {
	if src == nil {
		return &ztk.GuessYouLikeArgs{}
	}

	return &ztk.GuessYouLikeArgs{
		Page:          src.Page,
		PageSize:      src.PageSize,
		Sort:          src.Sort,
		DeviceValue:   src.DeviceValue,
		DeviceEncrypt: src.DeviceEncrypt,
		ItemId:        src.ItemId,
	}
}
