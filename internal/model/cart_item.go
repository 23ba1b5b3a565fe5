package model

import "github.com/shopspring/decimal"

// CartItem is one quantity-bearing cart line. Identity is the composite
// (username, sequence) where sequence is a per-user ordinal. The remaining
// columns form the composite foreign key into inventory_quantities.
type CartItem struct {
	Username       string `json:"username" gorm:"column:username;primaryKey;size:50"`
	Sequence       int    `json:"sequence" gorm:"column:sequence;primaryKey"`
	QuantityInCart int    `json:"quantity_in_cart" gorm:"column:quantity_in_cart;not null"`
	Model          string `json:"inventory_quantities_inventory_model" gorm:"column:inventory_quantities_inventory_model;size:50"`
	Size           string `json:"inventory_quantities_size" gorm:"column:inventory_quantities_size;size:20"`
	ColorCode      string `json:"inventory_quantities_color_color_code" gorm:"column:inventory_quantities_color_color_code;size:20"`
	Gender         string `json:"inventory_quantities_gender" gorm:"column:inventory_quantities_gender;size:20"`
}

// TableName maps CartItem onto the legacy cart table.
func (CartItem) TableName() string {
	return "cart"
}

// CartLine is a cart row joined against inventory and inventory_quantities
// for display. SKU is synthesized in the query as model+color+gender+size.
type CartLine struct {
	Username         string          `json:"username"`
	Sequence         int             `json:"sequence"`
	QuantityInCart   int             `json:"quantity_in_cart"`
	Model            string          `json:"model"`
	Price            decimal.Decimal `json:"price"`
	Color            string          `json:"color"`
	Gender           string          `json:"gender"`
	Size             string          `json:"size"`
	QuantityOnHand   int             `json:"quantity_on_hand"`
	ImagePath        string          `json:"image_path"`
	ModelDescription string          `json:"model_description"`
	SKU              string          `json:"sku"`
}

// CartStock is the lean projection used to compare cart quantities against
// stock on hand.
type CartStock struct {
	Username       string `json:"username"`
	Sequence       int    `json:"sequence"`
	QuantityInCart int    `json:"quantity_in_cart"`
	QuantityOnHand int    `json:"quantity_on_hand"`
}
