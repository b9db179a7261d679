package database

import (
	"log"
	"time"

	"github.com/supplychain/models"
	"gorm.io/gorm"
)

// SeedData seeds initial data into empty tables
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	// Check if data already exists
	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	// Use transaction for data integrity
	return db.Transaction(func(tx *gorm.DB) error {
		supplierMap, err := seedSuppliers(tx)
		if err != nil {
			return err
		}

		customerMap, err := seedCustomers(tx)
		if err != nil {
			return err
		}

		productMap, err := seedProducts(tx, supplierMap)
		if err != nil {
			return err
		}

		warehouseMap, err := seedWarehouses(tx)
		if err != nil {
			return err
		}

		if err := seedInventories(tx, productMap, warehouseMap); err != nil {
			return err
		}

		if err := seedOrders(tx, customerMap, productMap, supplierMap); err != nil {
			return err
		}

		if err := seedShipments(tx, supplierMap, productMap, warehouseMap); err != nil {
			return err
		}

		if err := seedSupplierProducts(tx, supplierMap, productMap); err != nil {
			return err
		}

		log.Println("Seed process completed successfully")
		return nil
	})
}

// seedSuppliers creates supplier data and returns a name -> ID map
func seedSuppliers(tx *gorm.DB) (map[string]uint, error) {
	suppliers := []models.Supplier{
		{SupplierName: "ElectroWorld", Region: "Asia", Phone: "+65-6100-2200", Email: "sales@electroworld.example"},
		{SupplierName: "Nordic Foods", Region: "Europe", Phone: "+31-20-555-0141", Email: "orders@nordicfoods.example"},
		{SupplierName: "GlobalTex", Region: "North America", Phone: "+1-312-555-0178", Email: "contact@globaltex.example"},
	}

	supplierMap := make(map[string]uint)
	for i := range suppliers {
		if err := tx.Create(&suppliers[i]).Error; err != nil {
			return nil, err
		}
		supplierMap[suppliers[i].SupplierName] = suppliers[i].SupplierID
	}

	log.Printf("  ✓ Seeded %d suppliers", len(suppliers))
	return supplierMap, nil
}

// seedCustomers creates customer data and returns a name -> ID map
func seedCustomers(tx *gorm.DB) (map[string]uint, error) {
	customers := []models.Customer{
		{CustomerName: "Alice Johnson", LoyaltyStatus: models.LoyaltyGold},
		{CustomerName: "Bob Smith", LoyaltyStatus: models.LoyaltySilver},
		{CustomerName: "Carol Diaz", LoyaltyStatus: models.LoyaltyBronze},
	}

	customerMap := make(map[string]uint)
	for i := range customers {
		if err := tx.Create(&customers[i]).Error; err != nil {
			return nil, err
		}
		customerMap[customers[i].CustomerName] = customers[i].CustomerID
	}

	log.Printf("  ✓ Seeded %d customers", len(customers))
	return customerMap, nil
}

// seedProducts creates product data and returns a name -> ID map
func seedProducts(tx *gorm.DB, supplierMap map[string]uint) (map[string]uint, error) {
	products := []models.Product{
		{ProductName: "Phone", Category: "Electronics", UnitPrice: 200, SupplierID: supplierMap["ElectroWorld"]},
		{ProductName: "Laptop", Category: "Electronics", UnitPrice: 1000, SupplierID: supplierMap["ElectroWorld"]},
		{ProductName: "Oat Cereal", Category: "Groceries", UnitPrice: 4.5, SupplierID: supplierMap["Nordic Foods"]},
		{ProductName: "Winter Jacket", Category: "Apparel", UnitPrice: 80, SupplierID: supplierMap["GlobalTex"]},
	}

	productMap := make(map[string]uint)
	for i := range products {
		if err := tx.Create(&products[i]).Error; err != nil {
			return nil, err
		}
		productMap[products[i].ProductName] = products[i].ProductID
	}

	log.Printf("  ✓ Seeded %d products", len(products))
	return productMap, nil
}

// seedWarehouses creates warehouse data and returns a location -> ID map
func seedWarehouses(tx *gorm.DB) (map[string]uint, error) {
	warehouses := []models.Warehouse{
		{Location: "Singapore Hub"},
		{Location: "Rotterdam Depot"},
		{Location: "Chicago Center"},
	}

	warehouseMap := make(map[string]uint)
	for i := range warehouses {
		if err := tx.Create(&warehouses[i]).Error; err != nil {
			return nil, err
		}
		warehouseMap[warehouses[i].Location] = warehouses[i].WarehouseID
	}

	log.Printf("  ✓ Seeded %d warehouses", len(warehouses))
	return warehouseMap, nil
}

// seedInventories creates stock rows linking products to warehouses
func seedInventories(tx *gorm.DB, productMap, warehouseMap map[string]uint) error {
	inventories := []models.Inventory{
		{ProductID: productMap["Phone"], WarehouseID: warehouseMap["Singapore Hub"], QuantityInStock: 10},
		{ProductID: productMap["Laptop"], WarehouseID: warehouseMap["Singapore Hub"], QuantityInStock: 60},
		{ProductID: productMap["Oat Cereal"], WarehouseID: warehouseMap["Rotterdam Depot"], QuantityInStock: 120},
		{ProductID: productMap["Oat Cereal"], WarehouseID: warehouseMap["Chicago Center"], QuantityInStock: 80},
		{ProductID: productMap["Winter Jacket"], WarehouseID: warehouseMap["Chicago Center"], QuantityInStock: 35},
	}

	if err := tx.Create(&inventories).Error; err != nil {
		return err
	}

	log.Printf("  ✓ Seeded %d inventory rows", len(inventories))
	return nil
}

// seedOrders creates orders with their detail lines
func seedOrders(tx *gorm.DB, customerMap, productMap, supplierMap map[string]uint) error {
	orders := []struct {
		order  models.Order
		detail models.OrderDetail
	}{
		{
			order: models.Order{
				OrderNo:    "ORD-2024-001",
				CustomerID: customerMap["Alice Johnson"],
				ProductID:  productMap["Phone"],
				SupplierID: supplierMap["ElectroWorld"],
				OrderDate:  date(2024, time.January, 15),
				Status:     models.OrderCompleted,
			},
			detail: models.OrderDetail{ProductID: productMap["Phone"], Quantity: 3},
		},
		{
			order: models.Order{
				OrderNo:    "ORD-2024-002",
				CustomerID: customerMap["Alice Johnson"],
				ProductID:  productMap["Laptop"],
				SupplierID: supplierMap["ElectroWorld"],
				OrderDate:  date(2024, time.January, 20),
				Status:     models.OrderCompleted,
			},
			detail: models.OrderDetail{ProductID: productMap["Laptop"], Quantity: 1},
		},
		{
			order: models.Order{
				OrderNo:    "ORD-2024-003",
				CustomerID: customerMap["Bob Smith"],
				ProductID:  productMap["Oat Cereal"],
				SupplierID: supplierMap["Nordic Foods"],
				OrderDate:  date(2024, time.February, 10),
				Status:     models.OrderPending,
			},
			detail: models.OrderDetail{ProductID: productMap["Oat Cereal"], Quantity: 10},
		},
		{
			order: models.Order{
				OrderNo:    "ORD-2024-004",
				CustomerID: customerMap["Carol Diaz"],
				ProductID:  productMap["Winter Jacket"],
				SupplierID: supplierMap["GlobalTex"],
				OrderDate:  date(2024, time.March, 5),
				Status:     models.OrderShipped,
			},
			detail: models.OrderDetail{ProductID: productMap["Winter Jacket"], Quantity: 2},
		},
	}

	for i := range orders {
		if err := tx.Create(&orders[i].order).Error; err != nil {
			return err
		}
		orders[i].detail.OrderID = orders[i].order.OrderID
		if err := tx.Create(&orders[i].detail).Error; err != nil {
			return err
		}
	}

	log.Printf("  ✓ Seeded %d orders with details", len(orders))
	return nil
}

// seedShipments creates shipments with their product movements
func seedShipments(tx *gorm.DB, supplierMap, productMap, warehouseMap map[string]uint) error {
	shipments := []struct {
		shipment  models.Shipment
		movements []models.ProductMovement
	}{
		{
			shipment: models.Shipment{
				ShipmentNo:   "SHP-2024-001",
				SupplierID:   supplierMap["ElectroWorld"],
				WarehouseID:  warehouseMap["Singapore Hub"],
				DeliveryDate: datePtr(2024, time.January, 10),
				Status:       models.ShipmentReceived,
				Weight:       1200.5,
			},
			movements: []models.ProductMovement{
				{ProductID: productMap["Phone"], WarehouseID: warehouseMap["Singapore Hub"], Quantity: 50, MovementType: models.MovementShipped},
				{ProductID: productMap["Laptop"], WarehouseID: warehouseMap["Singapore Hub"], Quantity: 70, MovementType: models.MovementShipped},
			},
		},
		{
			shipment: models.Shipment{
				ShipmentNo:   "SHP-2024-002",
				SupplierID:   supplierMap["Nordic Foods"],
				WarehouseID:  warehouseMap["Rotterdam Depot"],
				DeliveryDate: datePtr(2024, time.February, 1),
				Status:       models.ShipmentInTransit,
				Weight:       800,
			},
			movements: []models.ProductMovement{
				{ProductID: productMap["Oat Cereal"], WarehouseID: warehouseMap["Rotterdam Depot"], Quantity: 200, MovementType: models.MovementShipped},
			},
		},
		{
			shipment: models.Shipment{
				ShipmentNo:   "SHP-2024-003",
				SupplierID:   supplierMap["GlobalTex"],
				WarehouseID:  warehouseMap["Chicago Center"],
				DeliveryDate: datePtr(2024, time.March, 1),
				Status:       models.ShipmentReceived,
				Weight:       1500,
			},
			movements: []models.ProductMovement{
				{ProductID: productMap["Winter Jacket"], WarehouseID: warehouseMap["Chicago Center"], Quantity: 40, MovementType: models.MovementReceived},
			},
		},
	}

	for i := range shipments {
		if err := tx.Create(&shipments[i].shipment).Error; err != nil {
			return err
		}
		for j := range shipments[i].movements {
			shipments[i].movements[j].ShipmentID = shipments[i].shipment.ShipmentID
		}
		if err := tx.Create(&shipments[i].movements).Error; err != nil {
			return err
		}
	}

	log.Printf("  ✓ Seeded %d shipments with movements", len(shipments))
	return nil
}

// seedSupplierProducts creates the supplier <-> product junction rows
func seedSupplierProducts(tx *gorm.DB, supplierMap, productMap map[string]uint) error {
	links := []models.SupplierProduct{
		{SupplierID: supplierMap["ElectroWorld"], ProductID: productMap["Phone"]},
		{SupplierID: supplierMap["ElectroWorld"], ProductID: productMap["Laptop"]},
		{SupplierID: supplierMap["Nordic Foods"], ProductID: productMap["Oat Cereal"]},
		{SupplierID: supplierMap["GlobalTex"], ProductID: productMap["Winter Jacket"]},
	}

	if err := tx.Create(&links).Error; err != nil {
		return err
	}

	log.Printf("  ✓ Seeded %d supplier-product links", len(links))
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
