package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// APIキーを送るときのヘッダ名（サービス側のverify_api_keyに合わせる）。
const apiKeyHeader = "X-API-Key"

// Client は1サービス分のHTTP+JSONクライアント。
// リトライ・キャッシュ・ログは持たない。失敗はそのまま呼び出し側に返す。
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New はクライアントを作る。
// apiKeyは空なら送らない（デプロイ時の設定で決まり、実行時には変わらない）。
func New(baseURL string, apiKey string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   httpc,
	}
}

// doJSON はJSONボディを送ってJSONレスポンスを受ける共通パス。
// エラーは必ず newAPIError 経由で作る（リソースごとの文言の違いを作らない）。
func (c *Client) doJSON(ctx context.Context, method, path, resource, operation string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, resource, operation, out)
}

// send はヘッダ付与→実行→ステータス確認→デコードまでをやる。
func (c *Client) send(req *http.Request, resource, operation string, out any) error {
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		//エラーボディは読み捨てる（表示は呼び出し側の責務）
		io.Copy(io.Discard, resp.Body)
		return newAPIError(resource, operation, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
