package ztk

import (
	"bytes"
	"encoding/json"
)

// GuessYouLikeArgs 猜你喜欢请求参数. 如果 ItemId 非空, 设备相关字段由折淘客忽略.
type GuessYouLikeArgs struct {
	Page          int
	PageSize      int
	Sort          string
	DeviceValue   string
	DeviceEncrypt string
	ItemId        string
}

// GuessYouLikeModel is one provider record, kept as the bytes the provider sent
// so that callers receive every field with its original JSON type.
type GuessYouLikeModel = json.RawMessage

type GuessYouLikeResult struct {
	Status  int
	Items   []GuessYouLikeModel
	Content json.RawMessage
}

// Detail renders the upstream content as a message: JSON strings are
// unquoted, any other value is returned as raw JSON text.
func (r *GuessYouLikeResult) Detail() string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(r.Content))
}
