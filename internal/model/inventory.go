package model

import "github.com/shopspring/decimal"

// Inventory is a product model: the style-level record shared by all of a
// model's sellable variants.
type Inventory struct {
	Model            string          `json:"model" gorm:"column:model;primaryKey;size:50"`
	Price            decimal.Decimal `json:"price" gorm:"column:price;type:decimal(10,2);not null"`
	ModelDescription string          `json:"model_description" gorm:"column:model_description;size:255"`
}

// TableName maps Inventory onto the legacy inventory table.
func (Inventory) TableName() string {
	return "inventory"
}

// InventoryVariant is one sellable combination of model, color, gender and
// size with its own stock count. Read-only reference data in this service;
// only the checkout procedure decrements QuantityOnHand.
type InventoryVariant struct {
	Model          string `json:"inventory_model" gorm:"column:inventory_model;primaryKey;size:50"`
	Size           string `json:"size" gorm:"column:size;primaryKey;size:20"`
	ColorCode      string `json:"color_color_code" gorm:"column:color_color_code;primaryKey;size:20"`
	Gender         string `json:"gender" gorm:"column:gender;primaryKey;size:20"`
	QuantityOnHand int    `json:"quantity_on_hand" gorm:"column:quantity_on_hand;not null"`
	ImagePath      string `json:"image_path" gorm:"column:image_path;size:255"`
}

// TableName maps InventoryVariant onto the legacy inventory_quantities table.
func (InventoryVariant) TableName() string {
	return "inventory_quantities"
}

// SKU derives the synthetic variant identifier used by the storefront UI.
func (v InventoryVariant) SKU() string {
	return v.Model + v.ColorCode + v.Gender + v.Size
}
