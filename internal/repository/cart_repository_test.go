package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func cartLineColumns() []string {
	return []string{
		"username", "sequence", "quantity_in_cart", "model", "price", "color",
		"gender", "size", "quantity_on_hand", "image_path", "model_description", "sku",
	}
}

// Pinning the query text also pins the INNER JOIN against
// inventory_quantities: a cart row whose variant was removed produces no
// joined row, so the listing excludes it. That exclusion happens inside
// MySQL and cannot be observed through sqlmock rows; it would take a test
// against a real database to exercise end to end.
func TestCartRepository_ListForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(cartListQuery)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cartLineColumns()).
			AddRow("alice", 1, 2, "modelA", "19.99", "colorA", "unisex", "M", 7, "/img/a.png", "a shirt", "modelAcolorAunisexM").
			AddRow("alice", 2, 1, "modelB", "35.00", "colorB", "womens", "S", 3, "/img/b.png", "a jacket", "modelBcolorBwomensS"))

	lines, err := repo.ListForUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 1, lines[0].Sequence)
	assert.Equal(t, 2, lines[0].QuantityInCart)
	assert.Equal(t, "modelAcolorAunisexM", lines[0].SKU)
	assert.Equal(t, "19.99", lines[0].Price.StringFixed(2))
	assert.LessOrEqual(t, lines[0].Sequence, lines[1].Sequence)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_ListForUser_EmptyCart(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(cartListQuery)).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(cartLineColumns()))

	lines, err := repo.ListForUser(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_StockForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(cartStockQuery)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "sequence", "quantity_in_cart", "quantity_on_hand"}).
			AddRow("alice", 1, 2, 7))

	stock, err := repo.StockForUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, 2, stock[0].QuantityInCart)
	assert.Equal(t, 7, stock[0].QuantityOnHand)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_Add(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("CALL transaction_add_cart_item (?,?,?,?,?,?)")).
		WithArgs("alice", "modelA", "M", "colorA", "unisex", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Add(context.Background(), "alice", "modelA", "M", "colorA", "unisex", 2)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
	}{
		{"existing row updated", 1},
		{"missing row is a silent no-op", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCartRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE `cart` SET `quantity_in_cart`=? WHERE username = ? AND sequence = ?")).
				WithArgs(5, "alice", 1).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			err := repo.UpdateQuantity(context.Background(), "alice", 1, 5)
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_Remove(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
	}{
		{"existing row removed", 1},
		{"missing row is a silent no-op", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCartRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `cart` WHERE username = ? AND sequence = ?")).
				WithArgs("alice", 1).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			err := repo.Remove(context.Background(), "alice", 1)
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_UpdateQuantity_DataAccessError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `cart` SET `quantity_in_cart`=? WHERE username = ? AND sequence = ?")).
		WithArgs(5, "alice", 1).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.UpdateQuantity(context.Background(), "alice", 1, 5)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
