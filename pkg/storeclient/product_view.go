package storeclient

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Product 商品 (后台列表)
type Product struct {
	ID              int64     `json:"id"`
	StoreID         int64     `json:"store_id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	SKU             string    `json:"sku"`
	Price           float64   `json:"price"`
	DiscountedPrice *float64  `json:"discounted_price"`
	DiscountActive  bool      `json:"discount_active"`
	Currency        string    `json:"currency"`
	Stock           int       `json:"stock"`
	CategoryID      *int64    `json:"category_id"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ==================== ProductListView 商品列表 ====================

// ProductListView 后台商品列表的本地状态
// 只有服务端返回 2xx 后才修改 Products，失败时保留原状态并写入 Error
type ProductListView struct {
	client  *Client
	StoreID int64

	Products []Product
	Error    string
}

// NewProductListView 创建商品列表
func NewProductListView(client *Client, storeID int64, products []Product) *ProductListView {
	return &ProductListView{client: client, StoreID: storeID, Products: products}
}

// Load 拉取第一页商品 (最多 200 条)
func (v *ProductListView) Load(ctx context.Context) error {
	var page struct {
		List []Product `json:"list"`
	}
	path := fmt.Sprintf("/api/stores/%d/products?page_size=200", v.StoreID)
	if err := v.client.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		v.Error = errorMessage(err, "加载商品失败")
		return err
	}
	v.Products = page.List
	v.Error = ""
	return nil
}

// Delete 删除商品
func (v *ProductListView) Delete(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/api/stores/%d/products/%d", v.StoreID, productID)
	if err := v.client.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		v.Error = errorMessage(err, "删除商品失败")
		return err
	}

	kept := v.Products[:0:0]
	for _, p := range v.Products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	v.Products = kept
	v.Error = ""
	return nil
}

// ToggleActive 切换上架状态，成功后用服务端返回的商品替换本地项
func (v *ProductListView) ToggleActive(ctx context.Context, productID int64) error {
	idx := v.indexOf(productID)
	if idx < 0 {
		v.Error = "商品不存在"
		return fmt.Errorf("商品 %d 不在列表中", productID)
	}

	body := map[string]bool{"is_active": !v.Products[idx].IsActive}
	path := fmt.Sprintf("/api/stores/%d/products/%d", v.StoreID, productID)

	var updated Product
	if err := v.client.do(ctx, http.MethodPut, path, body, &updated); err != nil {
		v.Error = errorMessage(err, "更新商品状态失败")
		return err
	}

	// 请求期间列表可能已变化，重新定位
	if idx = v.indexOf(productID); idx >= 0 {
		v.Products[idx] = updated
	}
	v.Error = ""
	return nil
}

func (v *ProductListView) indexOf(productID int64) int {
	for i := range v.Products {
		if v.Products[i].ID == productID {
			return i
		}
	}
	return -1
}
