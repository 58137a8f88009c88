package repository

import (
	"context"
	"testing"
	"time"

	repo "loja/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
		//Prepared Statementのping挙動を避ける
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func productColumns() []string {
	return []string{
		"id", "name", "description", "price", "old_price", "image_url",
		"category_id", "is_active", "created_at", "updated_at", "deleted_at",
	}
}

func TestProductGormRepository_ListPublic(t *testing.T) {
	gdb, mock := newMockGorm(t)
	r := NewProductGormRepository(gdb)

	now := time.Now()

	// count → 本体 → カテゴリpreload の順で発行される
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`SELECT .* FROM "products" WHERE products\.is_active`).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(2, "Café Torrado", "500g", "10.00", nil, "/img/cafe.png", 1, true, now, now, nil).
			AddRow(1, "Chá Verde", "caixa", "5.50", "7.00", "/img/cha.png", 1, true, now, now, nil))

	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "created_at"}).
			AddRow(1, "Bebidas", "bebidas", now))

	items, total, err := r.ListPublic(context.Background(), repo.ProductListQuery{Page: 1, Limit: 20})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Café Torrado", items[0].Name)
	assert.Equal(t, "10.00", items[0].Price.String())
	require.NotNil(t, items[1].OldPrice)
	assert.Equal(t, "7.00", items[1].OldPrice.String())
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "bebidas", items[0].Category.Slug)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_ListPublic_SearchMatchesNameAndDescription(t *testing.T) {
	gdb, mock := newMockGorm(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WithArgs(true, "%caf%", "%caf%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT .* FROM "products" .* ILIKE .* ILIKE`).
		WithArgs(true, "%caf%", "%caf%", 20).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	items, total, err := r.ListPublic(context.Background(), repo.ProductListQuery{Page: 1, Limit: 20, Search: "caf"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Len(t, items, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_FindByID_NotFound(t *testing.T) {
	gdb, mock := newMockGorm(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	_, err := r.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCategoryGormRepository_FindBySlug_NotFound(t *testing.T) {
	gdb, mock := newMockGorm(t)
	r := NewCategoryGormRepository(gdb)

	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "created_at"}))

	_, err := r.FindBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
