package reports

import (
	"fmt"
	"testing"
	"time"

	"github.com/supplychain/database"
	"github.com/supplychain/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService migrates and seeds a named in-memory database and returns
// a report service over it.
func newTestService(t *testing.T, name string) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	if err := database.SeedData(db); err != nil {
		t.Fatal(err)
	}
	return NewService(db), db
}

func TestOrdersWithCustomerAndProduct(t *testing.T) {
	svc, _ := newTestService(t, "rpt_orders_join")

	rows, err := svc.OrdersWithCustomerAndProduct()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 joined orders, got %d", len(rows))
	}
	first := rows[0]
	if first.OrderNo != "ORD-2024-001" || first.CustomerName != "Alice Johnson" || first.ProductName != "Phone" {
		t.Fatalf("unexpected first row: %+v", first)
	}
}

func TestCompletedOrders(t *testing.T) {
	svc, _ := newTestService(t, "rpt_completed")

	orders, err := svc.CompletedOrders()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 completed orders, got %d", len(orders))
	}
	if orders[0].OrderNo != "ORD-2024-001" || orders[1].OrderNo != "ORD-2024-002" {
		t.Fatalf("expected completed orders oldest first, got %s then %s", orders[0].OrderNo, orders[1].OrderNo)
	}
	for _, o := range orders {
		if o.Status != models.OrderCompleted {
			t.Fatalf("expected status Completed, got %q", o.Status)
		}
	}
}

func TestOrdersBetween(t *testing.T) {
	svc, _ := newTestService(t, "rpt_range")

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	orders, err := svc.OrdersBetween(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders in January, got %d", len(orders))
	}
	if orders[0].OrderNo != "ORD-2024-001" {
		t.Fatalf("expected range results ordered by date, got %s first", orders[0].OrderNo)
	}
}

func TestLowStockByCategory(t *testing.T) {
	svc, _ := newTestService(t, "rpt_low_stock")

	rows, err := svc.LowStockByCategory(20, "Electronics")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly the Phone row, got %d rows", len(rows))
	}
	if rows[0].ProductName != "Phone" || rows[0].QuantityInStock != 10 {
		t.Fatalf("unexpected low stock row: %+v", rows[0])
	}
}

func TestHighValueOrderLines(t *testing.T) {
	svc, _ := newTestService(t, "rpt_high_value")

	rows, err := svc.HighValueOrderLines(500)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 high value lines, got %d", len(rows))
	}
	// highest first: Laptop 1x1000, then Phone 3x200
	if rows[0].ProductName != "Laptop" || rows[0].LineTotal != 1000 {
		t.Fatalf("unexpected first line: %+v", rows[0])
	}
	if rows[1].ProductName != "Phone" || rows[1].LineTotal != 600 {
		t.Fatalf("unexpected second line: %+v", rows[1])
	}
}

func TestHeavyShipments(t *testing.T) {
	svc, _ := newTestService(t, "rpt_heavy")

	rows, err := svc.HeavyShipments(1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 heavy shipments, got %d", len(rows))
	}
	if rows[0].ShipmentNo != "SHP-2024-003" || rows[0].Weight != 1500 {
		t.Fatalf("unexpected heaviest shipment: %+v", rows[0])
	}
	if rows[1].ShipmentNo != "SHP-2024-001" {
		t.Fatalf("unexpected second shipment: %+v", rows[1])
	}
}

func TestShipmentsReceivedAt(t *testing.T) {
	svc, db := newTestService(t, "rpt_received")

	var warehouse models.Warehouse
	if err := db.Where("location = ?", "Singapore Hub").First(&warehouse).Error; err != nil {
		t.Fatal(err)
	}

	rows, err := svc.ShipmentsReceivedAt(warehouse.WarehouseID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 received shipment at Singapore Hub, got %d", len(rows))
	}
	if rows[0].ShipmentNo != "SHP-2024-001" || rows[0].SupplierName != "ElectroWorld" {
		t.Fatalf("unexpected received shipment: %+v", rows[0])
	}
}

func TestDistinctStockedCategories(t *testing.T) {
	svc, _ := newTestService(t, "rpt_categories")

	categories, err := svc.DistinctStockedCategories()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Apparel", "Electronics", "Groceries"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d distinct categories, got %v", len(want), categories)
	}
	for i, category := range want {
		if categories[i] != category {
			t.Fatalf("expected categories %v, got %v", want, categories)
		}
	}
}

func TestDistinctSupplierRegions(t *testing.T) {
	svc, _ := newTestService(t, "rpt_regions")

	regions, err := svc.DistinctSupplierRegions()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Asia", "Europe", "North America"}
	if len(regions) != len(want) {
		t.Fatalf("expected %d distinct regions, got %v", len(want), regions)
	}
	for i, region := range want {
		if regions[i] != region {
			t.Fatalf("expected regions %v, got %v", want, regions)
		}
	}
}

func TestProductsByPrice(t *testing.T) {
	svc, _ := newTestService(t, "rpt_prices")

	descending, err := svc.ProductsByPrice(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(descending) != 4 {
		t.Fatalf("expected 4 products, got %d", len(descending))
	}
	if descending[0].ProductName != "Laptop" || descending[3].ProductName != "Oat Cereal" {
		t.Fatalf("unexpected descending order: %s ... %s", descending[0].ProductName, descending[3].ProductName)
	}

	ascending, err := svc.ProductsByPrice(false)
	if err != nil {
		t.Fatal(err)
	}
	if ascending[0].ProductName != "Oat Cereal" {
		t.Fatalf("unexpected ascending order, got %s first", ascending[0].ProductName)
	}
}

func TestMovementsForShipment(t *testing.T) {
	svc, db := newTestService(t, "rpt_movements")

	var shipment models.Shipment
	if err := db.Where("shipment_no = ?", "SHP-2024-001").First(&shipment).Error; err != nil {
		t.Fatal(err)
	}

	rows, err := svc.MovementsForShipment(shipment.ShipmentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(rows))
	}
	if rows[0].ProductName != "Phone" || rows[1].ProductName != "Laptop" {
		t.Fatalf("unexpected movement rows: %+v", rows)
	}
	if rows[0].MovementType != string(models.MovementShipped) {
		t.Fatalf("expected movement type Shipped, got %q", rows[0].MovementType)
	}
}

func TestCustomerOrderHistory(t *testing.T) {
	svc, db := newTestService(t, "rpt_history")

	var customer models.Customer
	if err := db.Where("customer_name = ?", "Alice Johnson").First(&customer).Error; err != nil {
		t.Fatal(err)
	}

	rows, err := svc.CustomerOrderHistory(customer.CustomerID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 history lines for Alice, got %d", len(rows))
	}
	// newest order first
	if rows[0].OrderNo != "ORD-2024-002" || rows[1].OrderNo != "ORD-2024-001" {
		t.Fatalf("expected history newest first, got %s then %s", rows[0].OrderNo, rows[1].OrderNo)
	}
	if rows[1].Quantity != 3 || rows[1].UnitPrice != 200 {
		t.Fatalf("unexpected Phone line: %+v", rows[1])
	}
}
