package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shopfront/internal/model"
)

const cartListQuery = `SELECT cart.username, cart.sequence, cart.quantity_in_cart, inventory.model,
 inventory.price, inventory_quantities.color_color_code AS color, inventory_quantities.gender,
 inventory_quantities.size, inventory_quantities.quantity_on_hand, inventory_quantities.image_path,
 inventory.model_description,
 CONCAT(inventory.model, inventory_quantities.color_color_code, inventory_quantities.gender,
 inventory_quantities.size) AS sku
 FROM cart
 INNER JOIN inventory ON cart.inventory_quantities_inventory_model = inventory.model
 INNER JOIN inventory_quantities
 ON cart.inventory_quantities_inventory_model = inventory_quantities.inventory_model
 AND cart.inventory_quantities_size = inventory_quantities.size
 AND cart.inventory_quantities_color_color_code = inventory_quantities.color_color_code
 AND cart.inventory_quantities_gender = inventory_quantities.gender
 WHERE cart.username = ? ORDER BY cart.sequence`

const cartStockQuery = `SELECT cart.username, cart.sequence, cart.quantity_in_cart,
 inventory_quantities.quantity_on_hand
 FROM cart
 INNER JOIN inventory ON cart.inventory_quantities_inventory_model = inventory.model
 INNER JOIN inventory_quantities
 ON cart.inventory_quantities_inventory_model = inventory_quantities.inventory_model
 AND cart.inventory_quantities_size = inventory_quantities.size
 AND cart.inventory_quantities_color_color_code = inventory_quantities.color_color_code
 AND cart.inventory_quantities_gender = inventory_quantities.gender
 WHERE cart.username = ? ORDER BY cart.sequence`

// CartRepository defines cart persistence operations over the
// (username, sequence) keyspace. Adds go through the stored procedure that
// owns conflict resolution; update and delete are single statements where a
// missing row is silent success.
type CartRepository interface {
	ListForUser(ctx context.Context, username string) ([]model.CartLine, error)
	StockForUser(ctx context.Context, username string) ([]model.CartStock, error)
	RawItems(ctx context.Context, username string) ([]map[string]interface{}, error)
	Add(ctx context.Context, username, invModel, size, colorCode, gender string, quantity int) error
	UpdateQuantity(ctx context.Context, username string, sequence, newQuantity int) error
	Remove(ctx context.Context, username string, sequence int) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// ListForUser returns cart lines joined with their inventory variant, ordered
// by sequence. Inner-join semantics: a cart row whose variant no longer
// exists is excluded, never surfaced as an error.
func (r *cartRepository) ListForUser(ctx context.Context, username string) ([]model.CartLine, error) {
	var lines []model.CartLine
	if err := r.db.WithContext(ctx).Raw(cartListQuery, username).Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return lines, nil
}

// StockForUser returns cart quantities alongside stock on hand, ordered by
// sequence.
func (r *cartRepository) StockForUser(ctx context.Context, username string) ([]model.CartStock, error) {
	var stock []model.CartStock
	if err := r.db.WithContext(ctx).Raw(cartStockQuery, username).Scan(&stock).Error; err != nil {
		return nil, fmt.Errorf("cart stock: %w", err)
	}
	return stock, nil
}

// RawItems returns the cart-items procedure result as generic rows; the
// procedure owns the column set.
func (r *cartRepository) RawItems(ctx context.Context, username string) ([]map[string]interface{}, error) {
	rows, err := r.db.WithContext(ctx).Raw("CALL getCartItems(?)", username).Rows()
	if err != nil {
		return nil, fmt.Errorf("cart items: %w", err)
	}
	defer rows.Close()
	return rowsToMaps(rows)
}

// Add delegates to the atomic add-to-cart procedure, which assigns the
// sequence and merges with an existing identical line.
func (r *cartRepository) Add(ctx context.Context, username, invModel, size, colorCode, gender string, quantity int) error {
	err := r.db.WithContext(ctx).
		Exec("CALL transaction_add_cart_item (?,?,?,?,?,?)", username, invModel, size, colorCode, gender, quantity).
		Error
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of one cart line. No matching row is a
// silent no-op; callers must not assume a row was changed.
func (r *cartRepository) UpdateQuantity(ctx context.Context, username string, sequence, newQuantity int) error {
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("username = ? AND sequence = ?", username, sequence).
		Update("quantity_in_cart", newQuantity).Error
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// Remove deletes one cart line. Deleting a non-existent row is a silent
// no-op.
func (r *cartRepository) Remove(ctx context.Context, username string, sequence int) error {
	err := r.db.WithContext(ctx).
		Where("username = ? AND sequence = ?", username, sequence).
		Delete(&model.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}
