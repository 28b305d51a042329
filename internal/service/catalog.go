// File: internal/service/catalog.go
package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"ecomarket/internal/apperr"
	"ecomarket/internal/cache"
	"ecomarket/internal/database"
	"ecomarket/internal/model"
	"ecomarket/internal/store"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	productsAllKey      = "products:all"
	productsCategoryKey = "products:category:"
)

var (
	listProducts  = store.ListProducts
	createProduct = store.CreateProduct
)

// NormalizeCategory 去除空白並轉小寫，寫入與查詢都使用
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func productsCacheKey(category string) string {
	if category == "" {
		return productsAllKey
	}
	return productsCategoryKey + category
}

// CreateProductInput 為管理表單的原始內容，OwnerID 為空字串代表無擁有者
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	OwnerID     string
}

// ProductCatalog 讀寫商品並以 redis 快取列表；快取失敗只記 log，不影響結果
type ProductCatalog struct {
	db    database.DB
	cache cache.Cache
	ttl   time.Duration
	log   logrus.FieldLogger

	// invalidations 在每次 Create 清快取前遞增
	invalidations atomic.Uint64
}

func NewProductCatalog(db database.DB, c cache.Cache, ttl time.Duration, log logrus.FieldLogger) *ProductCatalog {
	return &ProductCatalog{db: db, cache: c, ttl: ttl, log: log}
}

// List 回傳所有商品，或 category 完全相符 (轉小寫後) 的商品
func (pc *ProductCatalog) List(ctx context.Context, category string) ([]model.Product, error) {
	if !validText(category) {
		return nil, apperr.Validation("category contains invalid characters")
	}
	category = NormalizeCategory(category)
	key := productsCacheKey(category)

	if pc.ttl > 0 {
		raw, err := pc.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached []model.Product
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			pc.log.WithField("key", key).Warn("discarding undecodable product cache entry")
		case !cache.IsMiss(err):
			pc.log.WithError(err).WithField("key", key).Warn("product cache read failed")
		}
	}

	seen := pc.invalidations.Load()
	products, err := listProducts(ctx, pc.db, category)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	if pc.ttl > 0 {
		if raw, err := json.Marshal(products); err == nil {
			if err := pc.cache.Set(ctx, key, raw, pc.ttl).Err(); err != nil {
				pc.log.WithError(err).WithField("key", key).Warn("product cache write failed")
			} else if pc.invalidations.Load() != seen {
				// 查詢期間有 Create，剛寫入的結果可能已過期
				pc.invalidate(ctx, key)
			}
		}
	}
	return products, nil
}

// Create 建立商品，成功後清掉 "全部" 與該分類的列表快取
func (pc *ProductCatalog) Create(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	if !validText(in.Name) || !validText(in.Description) || !validText(in.Category) {
		return nil, apperr.Validation("name, description or category contains invalid characters")
	}
	p := &model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    NormalizeCategory(in.Category),
	}
	if p.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if p.Category == "" {
		return nil, apperr.Validation("category is required")
	}
	if len([]rune(p.Name)) > 100 || len([]rune(p.Description)) > 255 || len([]rune(p.Category)) > 50 {
		return nil, apperr.Validation("name, description or category is too long")
	}
	if owner := strings.TrimSpace(in.OwnerID); owner != "" {
		// owner_id 欄位為 INTEGER
		id, err := strconv.ParseInt(owner, 10, 32)
		if err != nil || id <= 0 {
			return nil, apperr.Validation("owner_id must be a positive integer")
		}
		ownerID := int(id)
		p.OwnerID = &ownerID
	}

	created, err := createProduct(ctx, pc.db, p)
	if stderrors.Is(err, store.ErrOwnerNotFound) {
		return nil, apperr.Wrap(apperr.KindValidation, "owner does not exist", err)
	}
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	pc.invalidations.Add(1)
	pc.invalidate(ctx, productsAllKey, productsCacheKey(created.Category))
	return created, nil
}

func (pc *ProductCatalog) invalidate(ctx context.Context, keys ...string) {
	if err := pc.cache.Del(ctx, keys...).Err(); err != nil {
		pc.log.WithError(err).WithField("keys", keys).Warn("product cache invalidation failed")
	}
}
