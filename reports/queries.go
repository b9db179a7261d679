// Package reports is the read-only query library over the supply chain schema.
// Every accessor is a pure projection; none mutate state. Row order is fixed by
// an explicit ORDER BY wherever it is part of the result contract.
package reports

import (
	"time"

	"github.com/supplychain/models"
	"gorm.io/gorm"
)

// Service runs the cataloged report queries against a database handle
type Service struct {
	db *gorm.DB
}

// NewService creates a report service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// OrderRow is one order joined to its customer and product
type OrderRow struct {
	OrderID      uint      `json:"order_id"`
	OrderNo      string    `json:"order_no"`
	OrderDate    time.Time `json:"order_date"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
}

// OrdersWithCustomerAndProduct joins orders to customers and products
func (s *Service) OrdersWithCustomerAndProduct() ([]OrderRow, error) {
	var rows []OrderRow
	err := s.db.Table("orders").
		Select("orders.order_id, orders.order_no, orders.order_date, orders.status, customers.customer_name, products.product_name").
		Joins("JOIN customers ON customers.customer_id = orders.customer_id").
		Joins("JOIN products ON products.product_id = orders.product_id").
		Order("orders.order_id").
		Scan(&rows).Error
	return rows, err
}

// CompletedOrders returns orders with status 'Completed', oldest first
func (s *Service) CompletedOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("status = ?", models.OrderCompleted).
		Order("order_date").
		Find(&orders).Error
	return orders, err
}

// OrdersBetween returns orders whose order_date falls in [from, to], oldest first
func (s *Service) OrdersBetween(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("order_date BETWEEN ? AND ?", from, to).
		Order("order_date").
		Find(&orders).Error
	return orders, err
}

// StockRow is one inventory row joined to its product and warehouse
type StockRow struct {
	ProductName     string `json:"product_name"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	QuantityInStock int    `json:"quantity_in_stock"`
}

// LowStockByCategory lists stock below threshold for one product category,
// lowest quantity first
func (s *Service) LowStockByCategory(threshold int, category string) ([]StockRow, error) {
	var rows []StockRow
	err := s.db.Table("inventories").
		Select("products.product_name, products.category, warehouses.location, inventories.quantity_in_stock").
		Joins("JOIN products ON products.product_id = inventories.product_id").
		Joins("JOIN warehouses ON warehouses.warehouse_id = inventories.warehouse_id").
		Where("inventories.quantity_in_stock < ? AND products.category = ?", threshold, category).
		Order("inventories.quantity_in_stock").
		Scan(&rows).Error
	return rows, err
}

// OrderLineRow is an order detail line with its derived total
type OrderLineRow struct {
	OrderID     uint    `json:"order_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// HighValueOrderLines projects quantity * unit_price per order line and keeps
// lines above minTotal, highest first
func (s *Service) HighValueOrderLines(minTotal float64) ([]OrderLineRow, error) {
	var rows []OrderLineRow
	err := s.db.Table("order_details").
		Select("order_details.order_id, products.product_name, order_details.quantity, products.unit_price, order_details.quantity * products.unit_price AS line_total").
		Joins("JOIN products ON products.product_id = order_details.product_id").
		Where("order_details.quantity * products.unit_price > ?", minTotal).
		Order("line_total DESC").
		Scan(&rows).Error
	return rows, err
}

// ShipmentRow is one shipment joined to its supplier and destination warehouse
type ShipmentRow struct {
	ShipmentID   uint       `json:"shipment_id"`
	ShipmentNo   string     `json:"shipment_no"`
	SupplierName string     `json:"supplier_name"`
	Location     string     `json:"location"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Status       string     `json:"status"`
	Weight       float64    `json:"weight"`
}

// HeavyShipments lists shipments heavier than minWeight, heaviest first
func (s *Service) HeavyShipments(minWeight float64) ([]ShipmentRow, error) {
	var rows []ShipmentRow
	err := s.db.Table("shipments").
		Select("shipments.shipment_id, shipments.shipment_no, suppliers.supplier_name, warehouses.location, shipments.delivery_date, shipments.status, shipments.weight").
		Joins("JOIN suppliers ON suppliers.supplier_id = shipments.supplier_id").
		Joins("JOIN warehouses ON warehouses.warehouse_id = shipments.warehouse_id").
		Where("shipments.weight > ?", minWeight).
		Order("shipments.weight DESC").
		Scan(&rows).Error
	return rows, err
}

// ShipmentsReceivedAt lists received shipments for a warehouse, newest delivery first
func (s *Service) ShipmentsReceivedAt(warehouseID uint) ([]ShipmentRow, error) {
	var rows []ShipmentRow
	err := s.db.Table("shipments").
		Select("shipments.shipment_id, shipments.shipment_no, suppliers.supplier_name, warehouses.location, shipments.delivery_date, shipments.status, shipments.weight").
		Joins("JOIN suppliers ON suppliers.supplier_id = shipments.supplier_id").
		Joins("JOIN warehouses ON warehouses.warehouse_id = shipments.warehouse_id").
		Where("shipments.status = ? AND shipments.warehouse_id = ?", models.ShipmentReceived, warehouseID).
		Order("shipments.delivery_date DESC").
		Scan(&rows).Error
	return rows, err
}

// DistinctStockedCategories returns each stocked product category exactly once,
// alphabetically
func (s *Service) DistinctStockedCategories() ([]string, error) {
	var categories []string
	err := s.db.Table("inventories").
		Joins("JOIN products ON products.product_id = inventories.product_id").
		Distinct().
		Order("products.category").
		Pluck("products.category", &categories).Error
	return categories, err
}

// DistinctSupplierRegions returns each supplier region exactly once, alphabetically
func (s *Service) DistinctSupplierRegions() ([]string, error) {
	var regions []string
	err := s.db.Model(&models.Supplier{}).
		Distinct().
		Order("region").
		Pluck("region", &regions).Error
	return regions, err
}

// ProductsByPrice returns the product catalog sorted by unit price
func (s *Service) ProductsByPrice(descending bool) ([]models.Product, error) {
	order := "unit_price"
	if descending {
		order = "unit_price DESC"
	}

	var products []models.Product
	err := s.db.Order(order).Find(&products).Error
	return products, err
}

// MovementRow is one product movement joined to its product and warehouse
type MovementRow struct {
	MovementID   uint   `json:"movement_id"`
	ProductName  string `json:"product_name"`
	Location     string `json:"location"`
	Quantity     int    `json:"quantity"`
	MovementType string `json:"movement_type"`
}

// MovementsForShipment lists the stock movements recorded for one shipment
func (s *Service) MovementsForShipment(shipmentID uint) ([]MovementRow, error) {
	var rows []MovementRow
	err := s.db.Table("product_movements").
		Select("product_movements.movement_id, products.product_name, warehouses.location, product_movements.quantity, product_movements.movement_type").
		Joins("JOIN products ON products.product_id = product_movements.product_id").
		Joins("JOIN warehouses ON warehouses.warehouse_id = product_movements.warehouse_id").
		Where("product_movements.shipment_id = ?", shipmentID).
		Order("product_movements.movement_id").
		Scan(&rows).Error
	return rows, err
}

// HistoryRow is one order line of a customer's purchase history
type HistoryRow struct {
	OrderID     uint      `json:"order_id"`
	OrderNo     string    `json:"order_no"`
	OrderDate   time.Time `json:"order_date"`
	Status      string    `json:"status"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

// CustomerOrderHistory lists a customer's order lines, newest order first
func (s *Service) CustomerOrderHistory(customerID uint) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := s.db.Table("orders").
		Select("orders.order_id, orders.order_no, orders.order_date, orders.status, products.product_name, order_details.quantity, products.unit_price").
		Joins("JOIN order_details ON order_details.order_id = orders.order_id").
		Joins("JOIN products ON products.product_id = order_details.product_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.order_date DESC").
		Scan(&rows).Error
	return rows, err
}
