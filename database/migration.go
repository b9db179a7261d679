package database

import (
	"fmt"
	"log"

	"github.com/supplychain/models"
	"gorm.io/gorm"
)

// AutoMigrate creates all tables with their constraints.
// Foreign keys, CHECK constraints and cascade rules come from the model tags,
// so a single pass produces the same DDL on PostgreSQL and SQLite.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// Product indexes
		{"idx_products_supplier", "CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier_id)"},
		{"idx_products_category", "CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)"},

		// Order indexes
		{"idx_orders_customer", "CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)"},
		{"idx_orders_status", "CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)"},
		{"idx_orders_date", "CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)"},
		{"idx_order_details_order", "CREATE INDEX IF NOT EXISTS idx_order_details_order ON order_details(order_id)"},
		{"idx_order_details_product", "CREATE INDEX IF NOT EXISTS idx_order_details_product ON order_details(product_id)"},

		// Inventory indexes
		{"idx_inventories_product", "CREATE INDEX IF NOT EXISTS idx_inventories_product ON inventories(product_id)"},
		{"idx_inventories_warehouse", "CREATE INDEX IF NOT EXISTS idx_inventories_warehouse ON inventories(warehouse_id)"},
		{"idx_inventories_quantity", "CREATE INDEX IF NOT EXISTS idx_inventories_quantity ON inventories(quantity_in_stock)"},

		// Shipment indexes
		{"idx_shipments_supplier", "CREATE INDEX IF NOT EXISTS idx_shipments_supplier ON shipments(supplier_id)"},
		{"idx_shipments_warehouse", "CREATE INDEX IF NOT EXISTS idx_shipments_warehouse ON shipments(warehouse_id)"},
		{"idx_movements_shipment", "CREATE INDEX IF NOT EXISTS idx_movements_shipment ON product_movements(shipment_id)"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			successCount++
		}
	}

	if successCount > 0 {
		log.Printf("Successfully created %d indexes", successCount)
	}

	return nil
}

// DropAllTables drops every schema table, children first
func DropAllTables(db *gorm.DB) error {
	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return nil
}
