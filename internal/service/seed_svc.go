package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// 演示数据
const (
	DemoEmail     = "demo@example.com"
	DemoPassword  = "demo123456"
	DemoStoreSlug = "demo-store"
)

// SeedService 写入演示数据，可重复执行
type SeedService struct {
	users      repository.UserRepository
	stores     repository.StoreRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	banners    repository.BannerRepository
	logger     *zap.Logger
}

func NewSeedService(
	users repository.UserRepository,
	stores repository.StoreRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	banners repository.BannerRepository,
	logger *zap.Logger,
) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{
		users:      users,
		stores:     stores,
		categories: categories,
		products:   products,
		banners:    banners,
		logger:     logger.Named("seed"),
	}
}

// Run 已存在的数据不会被覆盖
func (s *SeedService) Run(ctx context.Context) error {
	user, err := s.seedUser(ctx)
	if err != nil {
		return err
	}

	store, created, err := s.seedStore(ctx, user.ID)
	if err != nil {
		return err
	}

	category, err := s.seedCategory(ctx, store.ID)
	if err != nil {
		return err
	}

	if err := s.seedProducts(ctx, store.ID, category.ID); err != nil {
		return err
	}

	if created {
		banner := &model.PromotionalBanner{
			StoreID:     store.ID,
			Title:       "Welcome to Our Store",
			Subtitle:    "Discover Amazing Products",
			Description: "Shop the latest trends and best deals",
			SortOrder:   0,
			IsActive:    true,
		}
		if err := s.banners.Create(ctx, banner); err != nil {
			return fmt.Errorf("创建演示横幅失败: %w", err)
		}
	}

	s.logger.Info("演示数据写入完成", zap.String("email", user.Email), zap.String("store", store.Slug))
	return nil
}

func (s *SeedService) seedUser(ctx context.Context) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, DemoEmail)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = &model.User{Email: DemoEmail, Name: "Demo User", Password: string(hashed), IsActive: true}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("创建演示用户失败: %w", err)
	}
	return user, nil
}

func (s *SeedService) seedStore(ctx context.Context, ownerID int64) (*model.Store, bool, error) {
	store, err := s.stores.GetBySlug(ctx, DemoStoreSlug)
	if err != nil {
		return nil, false, err
	}
	if store != nil {
		return store, false, nil
	}

	store = &model.Store{
		Name:        "Demo Store",
		Slug:        DemoStoreSlug,
		Description: "A demo store to showcase the platform",
		OwnerID:     ownerID,
		Settings:    model.DefaultStoreSettings(),
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, false, fmt.Errorf("创建演示店铺失败: %w", err)
	}
	return store, true, nil
}

func (s *SeedService) seedCategory(ctx context.Context, storeID int64) (*model.Category, error) {
	category, err := s.categories.GetBySlug(ctx, storeID, "electronics")
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	category = &model.Category{
		StoreID:     storeID,
		Name:        "Electronics",
		Slug:        "electronics",
		Description: "Electronic products and gadgets",
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("创建演示分类失败: %w", err)
	}
	return category, nil
}

func (s *SeedService) seedProducts(ctx context.Context, storeID, categoryID int64) error {
	discounted := 79.99
	products := []model.Product{
		{
			Name:            "Wireless Headphones",
			Slug:            "wireless-headphones",
			Description:     "High-quality wireless headphones with noise cancellation",
			Price:           99.99,
			DiscountedPrice: &discounted,
			DiscountActive:  true,
			Stock:           50,
		},
		{
			Name:        "Smart Watch",
			Slug:        "smart-watch",
			Description: "Feature-rich smartwatch with fitness tracking",
			Price:       199.99,
			Stock:       30,
		},
	}

	for i := range products {
		p := &products[i]
		exists, err := s.products.ExistsBySlug(ctx, storeID, p.Slug, 0)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		p.StoreID = storeID
		p.CategoryID = &categoryID
		p.Currency = model.DefaultCurrency
		p.IsActive = true
		p.Images = []model.ProductImage{{URL: "/placeholder-product.jpg", SortOrder: 0}}
		if err := s.products.Create(ctx, p); err != nil {
			return fmt.Errorf("创建演示商品 %s 失败: %w", p.Slug, err)
		}
	}
	return nil
}
