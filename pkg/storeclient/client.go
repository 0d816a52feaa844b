// Package storeclient 店铺后台与店面的客户端视图状态
// 只负责请求与本地状态更新，不做重试和离线队列
package storeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 基于 resty 的 API 客户端
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// Option 客户端配置
type Option func(*Client)

// WithToken 初始 Token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout 请求超时
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithHTTPClient 替换底层 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc).
			SetBaseURL(c.http.BaseURL).
			SetHeader("Accept", "application/json")
	}
}

// New 创建客户端
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token 当前 Token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken 设置 Token，空字符串表示未登录
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ==================== 响应 ====================

// envelope 统一响应结构 {"code":0,"message":"","data":...}
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError 非 2xx 响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("请求失败 (HTTP %d)", e.Status)
	}
	return fmt.Sprintf("请求失败 (HTTP %d): %s", e.Status, e.Message)
}

// do 发送请求，2xx 时把 data 解析到 out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}

	var env envelope
	raw := resp.Body()
	if len(raw) > 0 {
		// 非 JSON 响应只影响错误信息
		_ = json.Unmarshal(raw, &env)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{Status: resp.StatusCode(), Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("解析响应失败: %w", err)
		}
	}
	return nil
}

// errorMessage 面向用户的错误信息
func errorMessage(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
