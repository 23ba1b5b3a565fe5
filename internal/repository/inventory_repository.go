package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// InventoryRepository invokes the read-side aggregation procedures. The
// procedures own filtering and shaping; rows come back as generic maps since
// their column sets are defined by the procedure bodies, not by this layer.
type InventoryRepository interface {
	FilteredProducts(ctx context.Context, color, gender, styles, size string) ([]map[string]interface{}, error)
	Valuation(ctx context.Context, scopeKey string) ([]map[string]interface{}, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory query gateway.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// FilteredProducts runs the filtered product-list procedure once. Empty
// filter values are passed through; the procedure treats them as "no filter".
func (r *inventoryRepository) FilteredProducts(ctx context.Context, color, gender, styles, size string) ([]map[string]interface{}, error) {
	rows, err := r.db.WithContext(ctx).
		Raw("CALL getFilteredProductList (?,?,?,?)", color, gender, styles, size).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("filtered product list: %w", err)
	}
	defer rows.Close()
	return rowsToMaps(rows)
}

// Valuation runs the inventory valuation procedure for the given scope key.
func (r *inventoryRepository) Valuation(ctx context.Context, scopeKey string) ([]map[string]interface{}, error) {
	rows, err := r.db.WithContext(ctx).
		Raw("CALL getInventoryValuation(?)", scopeKey).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("inventory valuation: %w", err)
	}
	defer rows.Close()
	return rowsToMaps(rows)
}

// rowsToMaps scans an arbitrary result set into one map per row, keyed by
// column name. Byte slices become strings so the maps JSON-encode as text
// rather than base64.
func rowsToMaps(rows *sql.Rows) ([]map[string]interface{}, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("result columns: %w", err)
	}

	var result []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}
