package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Supplier{},
		&Customer{},
		&Warehouse{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: Supplier

		// 3. Tables with multiple dependencies
		&Order{},     // depends on: Customer, Product, Supplier
		&Inventory{}, // depends on: Product, Warehouse
		&Shipment{},  // depends on: Supplier, Warehouse

		// 4. Detail/junction tables
		&OrderDetail{},     // depends on: Order, Product
		&ProductMovement{}, // depends on: Shipment, Product, Warehouse
		&SupplierProduct{}, // depends on: Supplier, Product
	}
}
