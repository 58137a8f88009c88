package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"loja/internal/domain/model"
	"loja/internal/infra/cache"
	repo "loja/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カタログ読み取りのキャッシュTTL
const catalogCacheTTL = 60 * time.Second

type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`

	//category指定時に解決したカテゴリ（見出し表示用）
	Category *model.Category `json:"category,omitempty"`
}

// 公開商品の一覧。searchはname/descriptionの部分一致、categoryはslug一致。
// 0件は正常な空状態として返す
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Search) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}

	search := strings.TrimSpace(in.Search)
	slug := strings.TrimSpace(in.Category)

	cacheKey := fmt.Sprintf("products:list:%d:%d:%s:%s", in.Page, in.Limit, search, slug)
	var cached ProductListOutput
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	out := ProductListOutput{
		Items: []model.Product{},
		Page:  in.Page,
		Limit: in.Limit,
	}

	//searchが無いときだけcategoryを見る（元の画面と同じ優先順）
	if search == "" && slug != "" {
		c, err := u.categoryRepo.FindBySlug(ctx, slug)
		if err == repo.ErrNotFound {
			//存在しないカテゴリは空一覧
			return out, nil
		}
		if err != nil {
			return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.Category = &c
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:         in.Page,
		Limit:        in.Limit,
		Search:       search,
		CategorySlug: slug,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out.Items = items
	out.Total = total

	_ = cache.SetJSON(ctx, cacheKey, out, catalogCacheTTL)

	return out, nil
}

// 商品詳細。非公開・不存在は404
func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cacheKey := fmt.Sprintf("products:detail:%d", productID)
	var cached model.Product
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	_ = cache.SetJSON(ctx, cacheKey, p, catalogCacheTTL)

	return p, nil
}

// カテゴリ一覧（ヘッダーのナビ用）
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}
