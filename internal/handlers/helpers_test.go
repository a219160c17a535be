package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_path_gen/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRequest はテスト用のHTTPリクエストを作ります。
// userID が nil でなければ DevUserContextMiddleware 用の X-User-ID ヘッダーを付けます。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
		reader = nil
	case string:
		reader = bytes.NewBufferString(b)
	case io.Reader:
		reader = b
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// assertErrorResponse はエラーレスポンスの形とコードを確認します
func assertErrorResponse(t *testing.T, body []byte, expectedCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(body, &errResp)
	assert.NoError(t, err, "Failed to unmarshal error response body")
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
	if expectedCode != "" {
		assert.Equal(t, expectedCode, errResp.Error.Code)
	}
}
