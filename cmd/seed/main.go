package main

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopfront/internal/auth"
	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/model"
)

// seedUser pairs a username with the plaintext it will be hashed from.
type seedUser struct {
	Username string
	Password string
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Inventory{},
		&model.InventoryVariant{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seedUsers(gormDB); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := seedInventory(gormDB); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	log.Println("Seed completed")
}

func seedUsers(gormDB *gorm.DB) error {
	users := []seedUser{
		{Username: "admin", Password: "secret"},
		{Username: "alice", Password: "secret1"},
		{Username: "generic", Password: "generic"},
	}

	for _, u := range users {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		record := model.User{Username: u.Username, PasswordHash: hash}
		// existing users keep their current password
		err = gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
		if err != nil {
			return err
		}
		log.Printf("Seeded user %q", u.Username)
	}
	return nil
}

func seedInventory(gormDB *gorm.DB) error {
	models := []model.Inventory{
		{Model: "TEE100", Price: decimal.NewFromFloat(19.99), ModelDescription: "Classic crew neck tee"},
		{Model: "HOOD200", Price: decimal.NewFromFloat(49.50), ModelDescription: "Heavyweight fleece hoodie"},
		{Model: "CAP300", Price: decimal.NewFromFloat(14.00), ModelDescription: "Adjustable cotton cap"},
	}

	variants := []model.InventoryVariant{
		{Model: "TEE100", Size: "S", ColorCode: "BLK", Gender: "unisex", QuantityOnHand: 40, ImagePath: "/img/tee100-blk.png"},
		{Model: "TEE100", Size: "M", ColorCode: "BLK", Gender: "unisex", QuantityOnHand: 55, ImagePath: "/img/tee100-blk.png"},
		{Model: "TEE100", Size: "M", ColorCode: "WHT", Gender: "womens", QuantityOnHand: 25, ImagePath: "/img/tee100-wht.png"},
		{Model: "HOOD200", Size: "L", ColorCode: "NVY", Gender: "mens", QuantityOnHand: 18, ImagePath: "/img/hood200-nvy.png"},
		{Model: "HOOD200", Size: "M", ColorCode: "NVY", Gender: "womens", QuantityOnHand: 12, ImagePath: "/img/hood200-nvy.png"},
		{Model: "CAP300", Size: "OS", ColorCode: "BLK", Gender: "unisex", QuantityOnHand: 60, ImagePath: "/img/cap300-blk.png"},
	}

	for _, m := range models {
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
			return err
		}
	}
	for _, v := range variants {
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&v).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d models, %d variants", len(models), len(variants))
	return nil
}
