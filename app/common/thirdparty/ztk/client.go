package ztk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	serviceName = "ztk"
	// status the open api reports in its body on success
	successStatus = 200
)

// Client is the part of the 折淘客 open api this service calls.
type Client interface {
	GuessYouLike(ctx context.Context, args *GuessYouLikeArgs) (*GuessYouLikeResult, error)
}

type client struct {
	conf Conf
	svc  httpc.Service
}

type rawResult struct {
	Status  int             `json:"status"`
	Content json.RawMessage `json:"content"`
}

func NewClient(c Conf) Client {
	timeout := time.Duration(c.Timeout) * time.Millisecond
	return &client{
		conf: c,
		svc:  httpc.NewServiceWithClient(serviceName, &http.Client{Timeout: timeout}),
	}
}

func MustNewClient(c Conf) Client {
	if c.AppKey == "" {
		panic("ztk: AppKey is required")
	}
	if _, err := url.Parse(c.Endpoint); err != nil {
		panic(fmt.Sprintf("ztk: bad endpoint %q: %v", c.Endpoint, err))
	}
	return NewClient(c)
}

func (c *client) GuessYouLike(ctx context.Context, args *GuessYouLikeArgs) (*GuessYouLikeResult, error) {
	if args == nil {
		return nil, fmt.Errorf("ztk: nil guess you like args")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.guessYouLikeURL(args), nil)
	if err != nil {
		return nil, fmt.Errorf("ztk: build request: %w", err)
	}

	resp, err := c.svc.DoRequest(req)
	if err != nil {
		return nil, fmt.Errorf("ztk: guess you like: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ztk: read body: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("ztk: unexpected http status %d: %s", resp.StatusCode, truncate(body))
	}

	return decodeGuessYouLike(body)
}

func (c *client) guessYouLikeURL(args *GuessYouLikeArgs) string {
	path := c.conf.GuessYouLikePath
	if path == "" {
		path = defaultGuessYouLikePath
	}

	q := url.Values{}
	q.Set("appkey", c.conf.AppKey)
	if c.conf.Sid != "" {
		q.Set("sid", c.conf.Sid)
	}
	q.Set("page", strconv.Itoa(args.Page))
	q.Set("page_size", strconv.Itoa(args.PageSize))
	q.Set("sort", args.Sort)
	setIfPresent(q, "device_value", args.DeviceValue)
	setIfPresent(q, "device_encrypt", args.DeviceEncrypt)
	setIfPresent(q, "item_id", args.ItemId)

	return strings.TrimRight(c.conf.Endpoint, "/") + path + "?" + q.Encode()
}

func decodeGuessYouLike(body []byte) (*GuessYouLikeResult, error) {
	var raw rawResult
	if err := jsonx.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("ztk: decode response: %w: %s", err, truncate(body))
	}

	res := &GuessYouLikeResult{
		Status:  raw.Status,
		Content: raw.Content,
	}
	if raw.Status != successStatus {
		return res, nil
	}

	items := make([]GuessYouLikeModel, 0)
	if len(raw.Content) > 0 && string(raw.Content) != "null" {
		if err := json.Unmarshal(raw.Content, &items); err != nil {
			return nil, fmt.Errorf("ztk: decode content: %w", err)
		}
	}
	res.Items = items

	return res, nil
}

func setIfPresent(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
