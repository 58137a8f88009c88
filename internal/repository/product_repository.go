package repository

import (
	"context"
	"errors"

	"loja/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索の条件。SearchとCategorySlugは排他（両方来たらSearch優先）
type ProductListQuery struct {
	Page         int
	Limit        int
	Search       string
	CategorySlug string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//公開商品をカテゴリ付きで一覧取得。Searchはname/descriptionの部分一致
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}

// カテゴリの取得
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
}
