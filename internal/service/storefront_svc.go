package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
	"github.com/asad200-stack/ONEWEB/pkg/i18n"
)

// 店面未配置颜色时的回退值
const (
	fallbackPrimaryColor   = "#ffffff"
	fallbackSecondaryColor = "#000000"
)

// StorefrontService 公开店面，无需登录
// 只返回上架商品与启用的横幅
type StorefrontService struct {
	stores        repository.StoreRepository
	products      repository.ProductRepository
	categories    repository.CategoryRepository
	banners       repository.BannerRepository
	bundle        *i18n.Bundle
	publicBaseURL string
}

func NewStorefrontService(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	banners repository.BannerRepository,
	bundle *i18n.Bundle,
	publicBaseURL string,
) *StorefrontService {
	if bundle == nil {
		bundle = i18n.Default()
	}
	return &StorefrontService{
		stores:        stores,
		products:      products,
		categories:    categories,
		banners:       banners,
		bundle:        bundle,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Home 店面首页
func (s *StorefrontService) Home(ctx context.Context, slug string, req dto.StorefrontReq, acceptLanguage string) (*dto.StorefrontResp, error) {
	store, err := s.loadStore(ctx, slug)
	if err != nil {
		return nil, err
	}
	lang := s.resolveLanguage(store, req.Lang, acceptLanguage)

	resp := &dto.StorefrontResp{
		Store:      toStorefrontHeader(store),
		Theme:      toStorefrontTheme(store.Settings),
		Language:   s.languageInfo(store, lang),
		Labels:     s.bundle.Messages(lang),
		Banners:    []dto.StorefrontBanner{},
		Categories: []dto.StorefrontCategory{},
		Products:   []dto.StorefrontProductCard{},
	}

	// 1. 横幅
	banners, err := s.banners.ListByStore(ctx, store.ID, true)
	if err != nil {
		return nil, fmt.Errorf("查询横幅失败: %w", err)
	}
	for _, b := range banners {
		item := dto.StorefrontBanner{
			ID:          b.ID,
			Title:       b.Title,
			Subtitle:    b.Subtitle,
			Description: b.Description,
			ImageURL:    b.ImageURL,
			LinkURL:     b.LinkURL,
		}
		if b.LinkURL != "" {
			item.LinkLabel = s.bundle.T(lang, "storefront.learn_more")
		}
		resp.Banners = append(resp.Banners, item)
	}

	// 2. 分类 (附上架商品数)
	categories, err := s.categories.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	counts, err := s.products.CountActiveByCategory(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("统计分类商品失败: %w", err)
	}

	filter := repository.ProductFilter{StoreID: store.ID, ActiveOnly: true, PageSize: -1}
	categoryMatched := req.Category == ""
	for _, c := range categories {
		selected := req.Category != "" && c.Slug == req.Category
		if selected {
			id := c.ID
			filter.CategoryID = &id
			categoryMatched = true
		}
		resp.Categories = append(resp.Categories, dto.StorefrontCategory{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Image:        c.Image,
			ProductCount: counts[c.ID],
			CountLabel:   s.bundle.T(lang, "storefront.products_count", counts[c.ID]),
			Selected:     selected,
		})
	}

	// 未知分类不展示任何商品
	if !categoryMatched {
		return resp, nil
	}

	// 3. 商品
	products, _, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	for i := range products {
		resp.Products = append(resp.Products, s.productCard(&products[i], lang))
	}
	return resp, nil
}

// Product 商品详情页，下架商品视为不存在
func (s *StorefrontService) Product(ctx context.Context, slug, productSlug, langParam, acceptLanguage string) (*dto.StorefrontProductResp, error) {
	store, err := s.loadStore(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetBySlug(ctx, store.ID, productSlug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("商品")
	}

	lang := s.resolveLanguage(store, langParam, acceptLanguage)
	card := s.productCard(product, lang)

	resp := &dto.StorefrontProductResp{
		Store:           toStorefrontHeader(store),
		Theme:           toStorefrontTheme(store.Settings),
		Language:        s.languageInfo(store, lang),
		Labels:          s.bundle.Messages(lang),
		Product:         card,
		Description:     product.Description,
		Specifications:  product.Specifications,
		SKU:             product.SKU,
		Images:          make([]string, 0, len(product.Images)),
		Tags:            make([]string, 0, len(product.Tags)),
		DiscountPercent: product.DiscountPercent(),
		Stock:           product.Stock,
	}
	for _, img := range product.Images {
		resp.Images = append(resp.Images, img.URL)
	}
	for _, tag := range product.Tags {
		resp.Tags = append(resp.Tags, tag.Name)
	}
	if resp.DiscountPercent > 0 {
		resp.DiscountLabel = s.bundle.T(lang, "storefront.off", resp.DiscountPercent)
	}
	if product.InStock() {
		resp.StockMessage = s.bundle.T(lang, "storefront.in_stock", product.Stock)
	} else {
		resp.StockMessage = s.bundle.T(lang, "storefront.out_of_stock")
	}
	resp.Share = s.shareLinks(store.Slug, product, card.PriceLabel)
	return resp, nil
}

// ==================== 辅助 ====================

func (s *StorefrontService) loadStore(ctx context.Context, slug string) (*model.Store, error) {
	store, err := s.stores.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, notFound("店铺")
	}
	return store, nil
}

// resolveLanguage 参数 > Accept-Language > 店铺默认语言
// 店铺限定了可选语言时，超出范围的回退到店铺默认语言
func (s *StorefrontService) resolveLanguage(store *model.Store, explicit, acceptLanguage string) string {
	fallback := i18n.DefaultLanguage
	var allowed model.StringList
	if store.Settings != nil {
		if store.Settings.Language != "" {
			fallback = store.Settings.Language
		}
		allowed = store.Settings.Languages
	}

	lang := s.bundle.Resolve(explicit, acceptLanguage, fallback)
	if len(allowed) > 0 && !allowed.Contains(lang) {
		return s.bundle.Resolve("", "", fallback)
	}
	return lang
}

func (s *StorefrontService) languageInfo(store *model.Store, lang string) dto.StorefrontLanguage {
	available := s.bundle.Codes()
	if store.Settings != nil && len(store.Settings.Languages) > 0 {
		available = []string(store.Settings.Languages)
	}
	return dto.StorefrontLanguage{
		Code:        lang,
		Direction:   s.bundle.Direction(lang),
		ToggleTo:    s.bundle.Toggle(lang),
		ToggleLabel: s.bundle.T(lang, "language.toggle"),
		Available:   available,
	}
}

func (s *StorefrontService) productCard(p *model.Product, lang string) dto.StorefrontProductCard {
	card := dto.StorefrontProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Price:          p.Price,
		EffectivePrice: p.EffectivePrice(),
		PriceLabel:     s.bundle.FormatPrice(lang, p.EffectivePrice(), p.Currency),
		Currency:       p.Currency,
		OnSale:         p.OnSale(),
		OutOfStock:     !p.InStock(),
	}
	if card.OnSale {
		card.OriginalLabel = s.bundle.FormatPrice(lang, p.Price, p.Currency)
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0].URL
	}
	if p.Category != nil {
		card.CategoryName = p.Category.Name
	}
	return card
}

// shareLinks 分享链接，基于 PUBLIC_BASE_URL 生成商品页地址
func (s *StorefrontService) shareLinks(storeSlug string, p *model.Product, priceLabel string) dto.ShareLinks {
	pageURL := fmt.Sprintf("%s/store/%s/product/%s", s.publicBaseURL, url.PathEscape(storeSlug), url.PathEscape(p.Slug))
	text := fmt.Sprintf("%s - %s %s", p.Name, priceLabel, pageURL)
	return dto.ShareLinks{
		URL:       pageURL,
		WhatsApp:  "https://wa.me/?text=" + url.QueryEscape(text),
		Messenger: "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(pageURL),
	}
}

func toStorefrontHeader(store *model.Store) dto.StorefrontHeader {
	return dto.StorefrontHeader{
		ID:          store.ID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Logo:        store.Logo,
	}
}

func toStorefrontTheme(settings *model.StoreSettings) dto.StorefrontTheme {
	theme := dto.StorefrontTheme{
		PrimaryColor:   fallbackPrimaryColor,
		SecondaryColor: fallbackSecondaryColor,
		DisplayMode:    model.DisplayModeGrid,
	}
	if settings == nil {
		return theme
	}
	if settings.PrimaryColor != "" {
		theme.PrimaryColor = settings.PrimaryColor
	}
	if settings.SecondaryColor != "" {
		theme.SecondaryColor = settings.SecondaryColor
	}
	if settings.DisplayMode == model.DisplayModeCards {
		theme.DisplayMode = model.DisplayModeCards
	}
	return theme
}
