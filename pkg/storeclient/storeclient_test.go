package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== 测试工具 ====================

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func sampleProducts() []Product {
	return []Product{
		{ID: 1, StoreID: 7, Name: "A", IsActive: true},
		{ID: 2, StoreID: 7, Name: "B", IsActive: false},
	}
}

// ==================== ProductListView ====================

func TestProductListView_DeleteSuccess(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		writeJSON(w, http.StatusOK, map[string]interface{}{"code": 0, "message": "删除成功"})
	}))
	defer srv.Close()

	view := NewProductListView(New(srv.URL, WithToken("tok")), 7, sampleProducts())
	require.NoError(t, view.Delete(context.Background(), 1))

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/api/stores/7/products/1", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
	require.Len(t, view.Products, 1)
	assert.Equal(t, int64(2), view.Products[0].ID)
	assert.Empty(t, view.Error)
}

func TestProductListView_DeleteFailureKeepsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]interface{}{"code": 403, "message": "insufficient role"})
	}))
	defer srv.Close()

	view := NewProductListView(New(srv.URL), 7, sampleProducts())
	err := view.Delete(context.Background(), 1)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Len(t, view.Products, 2)
	assert.Equal(t, "insufficient role", view.Error)
}

func TestProductListView_ToggleActive(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/stores/7/products/1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"code":    0,
			"message": "更新成功",
			"data":    map[string]interface{}{"id": 1, "store_id": 7, "name": "A (server)", "is_active": false},
		})
	}))
	defer srv.Close()

	view := NewProductListView(New(srv.URL), 7, sampleProducts())
	require.NoError(t, view.ToggleActive(context.Background(), 1))

	assert.Equal(t, map[string]interface{}{"is_active": false}, body)
	assert.False(t, view.Products[0].IsActive)
	assert.Equal(t, "A (server)", view.Products[0].Name, "本地项应被服务端返回值替换")
}

func TestProductListView_ToggleActiveFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	view := NewProductListView(New(srv.URL), 7, sampleProducts())
	assert.Error(t, view.ToggleActive(context.Background(), 2))

	assert.False(t, view.Products[1].IsActive)
	assert.NotEmpty(t, view.Error)
}

func TestProductListView_ToggleUnknownProduct(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	view := NewProductListView(New(srv.URL), 7, sampleProducts())
	assert.Error(t, view.ToggleActive(context.Background(), 99))
	assert.Zero(t, calls.Load())
}

func TestProductListView_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"code": 0,
			"data": map[string]interface{}{
				"total": 1,
				"list":  []map[string]interface{}{{"id": 5, "name": "C", "is_active": true}},
			},
		})
	}))
	defer srv.Close()

	view := NewProductListView(New(srv.URL), 7, nil)
	require.NoError(t, view.Load(context.Background()))
	require.Len(t, view.Products, 1)
	assert.Equal(t, int64(5), view.Products[0].ID)
}

// ==================== ContactForm ====================

func TestContactForm_RejectsEmptyNameWithoutRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	form := NewContactForm(New(srv.URL), 3)
	form.Name = "   "
	form.Email = "not-an-email"
	form.Message = "hello"

	err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Zero(t, calls.Load(), "校验失败不应发起请求")
	assert.Contains(t, form.FieldErrors, "name")
	assert.Contains(t, form.FieldErrors, "email")
	assert.False(t, form.Success)
}

func TestContactForm_SubmitSuccessClearsForm(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/3/messages", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, map[string]interface{}{"code": 0, "data": map[string]interface{}{"id": 1}})
	}))
	defer srv.Close()

	form := NewContactForm(New(srv.URL), 3)
	form.Name = "Ali"
	form.Email = "ali@example.com"
	form.Message = "Is this in stock?"

	require.NoError(t, form.Submit(context.Background()))
	assert.True(t, form.Success)
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Message)
	assert.Equal(t, "Ali", got["name"])
	assert.NotContains(t, got, "phone")
	// 请求体只有表单字段，店铺 ID 只出现在路径中
	assert.NotContains(t, got, "StoreID")
	assert.Len(t, got, 3)
}

func TestContactForm_SubmitRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusTooManyRequests, map[string]interface{}{"code": 429, "message": "请稍后再试"})
	}))
	defer srv.Close()

	form := NewContactForm(New(srv.URL), 3)
	form.Name, form.Email, form.Message = "Ali", "ali@example.com", "hi"

	assert.Error(t, form.Submit(context.Background()))
	assert.False(t, form.Success)
	assert.Equal(t, "请稍后再试", form.Error)
	assert.Equal(t, "Ali", form.Name, "失败时保留输入")
}

// ==================== LogoutButton ====================

func TestLogoutButton_ClearsToken(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		writeJSON(w, http.StatusOK, map[string]interface{}{"code": 0, "message": "已退出登录"})
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("tok"))
	require.NoError(t, NewLogoutButton(client).Click(context.Background()))
	assert.Equal(t, "/api/auth/logout", path)
	assert.Empty(t, client.Token())
}

func TestLogoutButton_ClearsTokenOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("tok"))
	assert.Error(t, NewLogoutButton(client).Click(context.Background()))
	assert.Empty(t, client.Token())
}

// ==================== LanguageToggle ====================

func TestLanguageToggle(t *testing.T) {
	toggle := NewLanguageToggle("fr")
	assert.Equal(t, "en", toggle.Lang)
	assert.Equal(t, "ltr", toggle.Direction())

	assert.Equal(t, "ar", toggle.Toggle())
	assert.Equal(t, "rtl", toggle.Direction())
	assert.NotEmpty(t, toggle.Label())

	assert.Equal(t, "en", toggle.Toggle())
}
