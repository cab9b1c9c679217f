package ztk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tbk/app/api/ztk/internal/svc"
	"tbk/app/api/ztk/internal/types"
	"tbk/app/common/consts/errno"
	"tbk/app/common/thirdparty/ztk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx/logtest"
)

// --- Mock implementations ---

type mockZtkClient struct {
	result *ztk.GuessYouLikeResult
	err    error

	calls    int
	lastArgs *ztk.GuessYouLikeArgs
}

func (m *mockZtkClient) GuessYouLike(_ context.Context, args *ztk.GuessYouLikeArgs) (*ztk.GuessYouLikeResult, error) {
	m.calls++
	m.lastArgs = args
	return m.result, m.err
}

// --- Helpers ---

func newLogic(client ztk.Client) *GuessYouLikeLogic {
	return NewGuessYouLikeLogic(context.Background(), &svc.ServiceContext{Ztk: client})
}

func records() []ztk.GuessYouLikeModel {
	return []ztk.GuessYouLikeModel{
		ztk.GuessYouLikeModel(`{"tao_id":"1001","title":"record1","zk_final_price":"19.90"}`),
		ztk.GuessYouLikeModel(`{"tao_id":1002,"title":"record2","volume":7}`),
	}
}

// --- Tests ---

func TestGuessYouLike_Success(t *testing.T) {
	c := logtest.NewCollector(t)
	client := &mockZtkClient{result: &ztk.GuessYouLikeResult{Status: 200, Items: records()}}

	resp, err := newLogic(client).GuessYouLike(&types.GuessYouLikeForm{Page: 1, PageSize: 2, Sort: "new", ItemId: "1000"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.Equal(t, errno.StatusOK, resp.StatusCode)
	assert.Equal(t, records(), resp.Data)
	assert.Equal(t, 1, client.calls)
	assert.Zero(t, strings.Count(c.String(), `"level":"error"`))
}

func TestGuessYouLike_CarriesSelectors(t *testing.T) {
	t.Run("item id", func(t *testing.T) {
		client := &mockZtkClient{result: &ztk.GuessYouLikeResult{Status: 200}}

		resp, err := newLogic(client).GuessYouLike(&types.GuessYouLikeForm{Page: 4, PageSize: 10, Sort: "new", ItemId: "612345678901"})
		require.NoError(t, err)
		assert.True(t, resp.Success)

		require.NotNil(t, client.lastArgs)
		assert.Equal(t, "612345678901", client.lastArgs.ItemId)
		assert.Empty(t, client.lastArgs.DeviceValue)
		assert.Empty(t, client.lastArgs.DeviceEncrypt)
		assert.Equal(t, 4, client.lastArgs.Page)
		assert.Equal(t, 10, client.lastArgs.PageSize)
	})

	t.Run("device", func(t *testing.T) {
		client := &mockZtkClient{result: &ztk.GuessYouLikeResult{Status: 200}}

		_, err := newLogic(client).GuessYouLike(&types.GuessYouLikeForm{
			Page: 1, PageSize: 10, Sort: "new",
			DeviceValue: "e10adc3949ba59abbe56e057f20f883e", DeviceEncrypt: "IMEI",
		})
		require.NoError(t, err)

		require.NotNil(t, client.lastArgs)
		assert.Equal(t, "e10adc3949ba59abbe56e057f20f883e", client.lastArgs.DeviceValue)
		assert.Equal(t, "IMEI", client.lastArgs.DeviceEncrypt)
		assert.Empty(t, client.lastArgs.ItemId)
	})
}

func TestGuessYouLike_UpstreamFailure(t *testing.T) {
	c := logtest.NewCollector(t)
	client := &mockZtkClient{result: &ztk.GuessYouLikeResult{Status: 403, Content: []byte(`"forbidden"`)}}

	resp, err := newLogic(client).GuessYouLike(&types.GuessYouLikeForm{Page: 1, PageSize: 2, Sort: "new"})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, errno.ZtkError, resp.StatusCode)
	assert.Equal(t, "ztk_error", errno.Name(resp.StatusCode))
	assert.Equal(t, "forbidden", resp.StatusMsg)
	assert.Nil(t, resp.Data)
	assert.Zero(t, strings.Count(c.String(), `"level":"error"`))
}

func TestGuessYouLike_UpstreamFailureWithoutContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty string", content: `""`},
		{name: "no content", content: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockZtkClient{result: &ztk.GuessYouLikeResult{Status: 403, Content: []byte(tt.content)}}

			resp, err := newLogic(client).GuessYouLike(&types.GuessYouLikeForm{Page: 1, PageSize: 2, Sort: "new"})
			require.NoError(t, err)

			assert.False(t, resp.Success)
			assert.Equal(t, errno.ZtkError, resp.StatusCode)
			assert.Empty(t, resp.StatusMsg)
		})
	}
}

func TestGuessYouLike_ClientError(t *testing.T) {
	c := logtest.NewCollector(t)
	client := &mockZtkClient{err: errors.New("ztk: guess you like: context deadline exceeded")}

	resp, err := newLogic(client).GuessYouLike(&types.GuessYouLikeForm{Page: 1, PageSize: 2, Sort: "new"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.False(t, resp.Success)
	assert.Equal(t, errno.InternalError, resp.StatusCode)
	assert.NotContains(t, resp.StatusMsg, "deadline")
	assert.NotEmpty(t, resp.Ref)
	assert.Equal(t, 1, client.calls)

	assert.Equal(t, 1, strings.Count(c.String(), `"level":"error"`))
	assert.Contains(t, c.String(), "context deadline exceeded")
}
